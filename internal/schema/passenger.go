package schema

type PaxType string

const (
	ADT PaxType = "ADT"
	CNN PaxType = "CNN"
	INF PaxType = "INF"
	INS PaxType = "INS"
)

type RosterEntry struct {
	ID   string  `json:"id"`
	Type PaxType `json:"type"`
}

// Roster lists passengers in assignment order, PAX1 first.
type Roster []RosterEntry

func (r Roster) Type(id string) (PaxType, bool) {
	for _, entry := range r {
		if entry.ID == id {
			return entry.Type, true
		}
	}

	return "", false
}

func (r Roster) Has(id string) bool {
	_, ok := r.Type(id)
	return ok
}

func (r Roster) Map() map[string]string {
	mapped := make(map[string]string, len(r))
	for _, entry := range r {
		mapped[entry.ID] = string(entry.Type)
	}

	return mapped
}

func (r Roster) Count(paxType PaxType) int {
	count := 0
	for _, entry := range r {
		if entry.Type == paxType {
			count++
		}
	}

	return count
}
