package types

// ------------------------
// Temperature & humidity
// ------------------------

// TempUnit is the unit the node reports temperature in.
type TempUnit uint8

const (
	Celsius TempUnit = iota
	Fahrenheit
)

// Symbol is the single-letter label shown next to the temperature.
func (u TempUnit) Symbol() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Measurement is one reading, produced once per cycle and dropped at the
// end of it. Fixed-point to suit TinyGo.
type Measurement struct {
	// Tenths of Unit (e.g. 231 => 23.1).
	DeciTemp int32
	Unit     TempUnit
	// Tenths of %RH (0..1000).
	DeciRH uint16
}

// CelsiusToFahrenheit converts tenths of °C to tenths of °F, rounded to the
// nearest tenth.
func CelsiusToFahrenheit(deciC int32) int32 {
	n := deciC * 9
	if n < 0 {
		return (n-2)/5 + 320
	}
	return (n+2)/5 + 320
}
