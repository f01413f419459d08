package enum

// --- ContactStatus ---
type ContactStatus string

const (
	ContactOpen   ContactStatus = "open"
	ContactClosed ContactStatus = "closed"
)

func AllContactStatus() []ContactStatus {
	return []ContactStatus{
		ContactOpen,
		ContactClosed,
	}
}

func (e ContactStatus) String() string { return string(e) }

func (e ContactStatus) IsValid() bool {
	switch e {
	case ContactOpen, ContactClosed:
		return true
	}
	return false
}

func ContactStatusValues() []string {
	vals := AllContactStatus()
	strs := make([]string, len(vals))

	for i, v := range vals {
		strs[i] = v.String()
	}

	return strs
}
