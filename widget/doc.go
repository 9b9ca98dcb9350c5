// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the side menu control. SideMenu holds
// persistent state and turns pointer events into drawer gestures.
// Theme packages such as `component` implement drawing of the menu.
package widget
