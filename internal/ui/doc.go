// Package ui defines the contracts shared by everything drawn on screen.
//
// Component model:
//   - A Menu is a screen. The App owns exactly one base Menu and at most one
//     Popup, which wraps another Menu together with a placement Area.
//   - Widgets are focusable leaves owned by a Menu. The Menu tracks focus by
//     index and tells widgets about it through SetFocused.
//
// Message flow:
//   - Components never mutate the App directly. They post a Notification
//     through Context.SendNotification and the App applies it on a later
//     frame, one notification per frame.
//   - Commands for the running chat session go through
//     Context.SendBackendCommand and are dropped while no session exists.
//
// Settings are owned by the App. Components read them through
// Context.Settings, which returns a copy.
package ui
