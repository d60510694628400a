package style

// Variables consumed by the portfolio pages.
const (
	VarTextColor          = "--text-color"
	VarBackgroundColor    = "--background-color"
	VarPrimaryColor       = "--primary-color"
	VarFontFamily         = "--font-family-primary"
	VarBackgroundFallback = "--background-color-fallback"
	VarBorderColor        = "--border-color"
	VarTextFallback       = "--text-color-fallback"
	VarSecondaryColor     = "--secondary-color"
	VarAccentColor        = "--accent-color"
	VarPrimaryFallback    = "--primary-color-fallback"
)

// Variables consumed by the form pages.
const (
	VarFormBackground = "--bg-color"
	VarContainerBg    = "--container-bg"
	VarFocusColor     = "--focus-color"
)
