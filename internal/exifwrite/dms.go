package exifwrite

import (
	"fmt"
	"math"
)

// decimalToDMS converts a decimal-degree coordinate magnitude into the
// degrees/minutes/seconds form EXIF's GPS IFD expects, per spec.md §4.6.
func decimalToDMS(decimal float64) (deg int, min int, sec float64) {
	decimal = math.Abs(decimal)
	deg = int(decimal)
	remainderMinutes := (decimal - float64(deg)) * 60
	min = int(remainderMinutes)
	sec = (remainderMinutes - float64(min)) * 60
	return
}

// formatDMS renders a DMS triple in the form exiftool accepts for a GPS
// coordinate tag value.
func formatDMS(deg, min int, sec float64) string {
	return fmt.Sprintf("%d deg %d' %.4f\"", deg, min, sec)
}

// gpsRef returns the hemisphere reference letter and positive magnitude
// for a signed decimal-degree coordinate.
func gpsRef(value float64, positive, negative string) (string, float64) {
	if value < 0 {
		return negative, -value
	}
	return positive, value
}
