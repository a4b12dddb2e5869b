package color

import "strings"

const (
	hexRed    = "#FF0000"
	hexGreen  = "#00FF00"
	hexBlue   = "#0000FF"
	hexWhite  = "#FFFFFF"
	hexBlack  = "#000000"
	hexYellow = "#FFFF00"
	hexOrange = "#FFA500"
	hexIndigo = "#4B369D"
	hexViolet = "#70369D"
)

type namedColor struct {
	name string
	hex  string
}

var wheel = []namedColor{
	{"red", hexRed},
	{"green", hexGreen},
	{"blue", hexBlue},
	{"white", hexWhite},
	{"black", hexBlack},
	{"yellow", hexYellow},
	{"orange", hexOrange},
	{"indigo", hexIndigo},
	{"violet", hexViolet},
}

// WheelNames lists the named colors.
func WheelNames() []string {
	names := make([]string, len(wheel))
	for i, c := range wheel {
		names[i] = c.name
	}
	return names
}

// Named returns a named wheel color in the requested format. An empty
// format means hex.
func Named(name, format string) (Value, error) {
	for _, c := range wheel {
		if strings.EqualFold(c.name, name) {
			return wheelColor(c.hex, []string{format})
		}
	}
	return nil, newError(ErrCodeUnsupportedFormat, "unknown named color", map[string]interface{}{
		"name": name,
	})
}

func wheelColor(hex string, format []string) (Value, error) {
	f := string(FormatHex)
	if len(format) > 0 && format[0] != "" {
		f = format[0]
	}
	return To(MustHex(hex), f)
}

func Red(format ...string) (Value, error)    { return wheelColor(hexRed, format) }
func Green(format ...string) (Value, error)  { return wheelColor(hexGreen, format) }
func Blue(format ...string) (Value, error)   { return wheelColor(hexBlue, format) }
func White(format ...string) (Value, error)  { return wheelColor(hexWhite, format) }
func Black(format ...string) (Value, error)  { return wheelColor(hexBlack, format) }
func Yellow(format ...string) (Value, error) { return wheelColor(hexYellow, format) }
func Orange(format ...string) (Value, error) { return wheelColor(hexOrange, format) }
func Indigo(format ...string) (Value, error) { return wheelColor(hexIndigo, format) }
func Violet(format ...string) (Value, error) { return wheelColor(hexViolet, format) }

// Complementary inverts each RGB channel and keeps alpha.
func Complementary(v Value) (RGBA, error) {
	if v == nil {
		return RGBA{}, newError(ErrCodeInvalidValue, "complementary requires a color value", nil)
	}

	rgba, err := ToRGBA(v.Clone())
	if err != nil {
		return RGBA{}, err
	}

	return NewRGBA(255-rgba.r, 255-rgba.g, 255-rgba.b, rgba.a)
}
