package diag

// Severity ranks how serious a diagnostic is.
// Порядок значений важен: Bag.Sort и сравнения вида >= SevError
// полагаются на то, что серьёзность растёт вместе с числом.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
