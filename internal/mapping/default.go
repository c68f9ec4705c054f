package mapping

import "column-mover/internal/transform"

// Variant selects between the derivation rules found in the field for the
// gas meter layout.
type Variant struct {
	// IntegerReadings computes the start reading as an integer difference
	// instead of a comma-decimal one.
	IntegerReadings bool
	// ISODates reformats the consumption period dates as YYYY-MM-DD instead
	// of copying them verbatim.
	ISODates bool
}

// Default returns the gas meter table with decimal start readings and
// verbatim dates.
func Default() *Table {
	return DefaultFor(Variant{})
}

// DefaultFor returns the gas meter table for the given variant.
func DefaultFor(v Variant) *Table {
	startReading := transform.SubtractDecimalName
	if v.IntegerReadings {
		startReading = transform.SubtractIntegerName
	}

	periodStart := Field("Data początku zużycia", "DataOdczytuPoprz")
	periodEnd := Field("Data końca zużycia", "DataOdczytu")

	if v.ISODates {
		periodStart = periodStart.WithTransform(transform.DateISOName)
		periodEnd = periodEnd.WithTransform(transform.DateISOName)
	}

	return &Table{
		Version: "1",
		Columns: []ColumnSpec{
			Field("Numer ewidencyjny", "POD").WithType(CoerceString),
			Literal("Nazwa odbiorcy", "Kowalski Jan"),
			Literal("Adres instalacji", "Bajkowa 1, 75-555 Bajka"),
			Field("Grupa Taryfowa OSD", "Taryfa").WithTransform(transform.StripUnderscoresName),
			Literal("Symbol ORCS", "ORCS070002"),
			Literal("Rodzaj urządzenia pomiarowego", "GAZOMIERZ"),
			Field("Numer fabryczny", "NrGazomierza"),
			Literal("Rodzaj odczytu", "RZEC"),
			periodStart,
			periodEnd,
			Fields("Wskazanie na początek", "WskazanieLicznika", "ZuzycieM3").WithTransform(startReading),
			Field("Wskazanie na koniec", "WskazanieLicznika"),
			Field("Zużycie M3", "ZuzycieM3"),
			Field("Współczynnik konwersji M3 na kWh", "WspKonwersji"),
			Field("Zużycie kWh", "ZuzycieKWH"),
			Derived("Data zatwierdzenia", transform.TodayName),
			Literal("Wyliczenie współczynnika konwersji", "ORCS070002"),
		},
	}
}
