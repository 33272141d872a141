package events

import "github.com/atomicstack/matui/internal/logging"

type UITracer struct{}

type AuthTracer struct{}

var (
	UI   = UITracer{}
	Auth = AuthTracer{}
)

func (UITracer) HelpToggle(hidden bool) {
	logging.Trace("ui.help.toggle", map[string]interface{}{"hidden": hidden})
}

func (UITracer) MenuSwitch(menu string) {
	logging.Trace("ui.menu.switch", map[string]interface{}{"menu": menu})
}

func (UITracer) PopupShow(menu string) {
	logging.Trace("ui.popup.show", map[string]interface{}{"menu": menu})
}

func (UITracer) PopupHide() {
	logging.Trace("ui.popup.hide", nil)
}

func (UITracer) QuitRequest(confirm bool) {
	logging.Trace("ui.quit", map[string]interface{}{"confirm": confirm})
}

func (UITracer) Undersized(width, height, minWidth, minHeight int) {
	logging.Trace("ui.undersized", map[string]interface{}{
		"width":      width,
		"height":     height,
		"min_width":  minWidth,
		"min_height": minHeight,
	})
}

func (AuthTracer) Submit(username, homeserver string) {
	logging.Trace("auth.submit", map[string]interface{}{"username": username, "homeserver": homeserver})
}

func (AuthTracer) Invalid(reason string) {
	logging.Trace("auth.invalid", map[string]interface{}{"reason": reason})
}
