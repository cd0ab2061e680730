package booking

// TotalPrice derives the stay total from a nightly rate. An invalid range
// degrades to 0 rather than failing; the booking service owns validation.
func TotalPrice(nightlyRate float64, r DateRange) float64 {
	if !r.IsValid() {
		return 0
	}
	return nightlyRate * float64(r.Nights())
}
