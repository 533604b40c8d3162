package measure

type length struct{ Vectorial }

func (length) Property() length { return length{} }

type metre struct {
	length
	NoOffset
}

func (metre) Ratio() float64 { return 1 }
func (metre) Suffix() string { return "m" }

type foot struct {
	length
	NoOffset
}

func (foot) Ratio() float64 { return 0.3048 }
func (foot) Suffix() string { return "ft" }

type temperature struct{}

func (temperature) Property() temperature { return temperature{} }

type kelvin struct {
	temperature
	NoOffset
}

func (kelvin) Ratio() float64 { return 1 }
func (kelvin) Suffix() string { return "K" }

type celsius struct{ temperature }

func (celsius) Ratio() float64  { return 1 }
func (celsius) Offset() float64 { return 273.15 }
func (celsius) Suffix() string  { return "°C" }

type fahrenheit struct{ temperature }

func (fahrenheit) Ratio() float64  { return 5. / 9. }
func (fahrenheit) Offset() float64 { return 273.15 - 32.*5./9. }
func (fahrenheit) Suffix() string  { return "°F" }
