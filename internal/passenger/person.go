package passenger

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/brianvoe/gofakeit/v6"
)

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

var (
	childDateOfBirth  = time.Date(2018, time.July, 9, 0, 0, 0, 0, time.UTC)
	infantDateOfBirth = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	childTitles       = []string{"Miss", "Mstr"}
)

// Person is the fabricated identity of one travelling passenger.
type Person struct {
	Title       string
	GivenName   string
	MiddleName  string
	Surname     string
	DateOfBirth time.Time
	Gender      Gender
}

func (p Person) Email(domain string) string {
	return fmt.Sprintf("%s.%s@%s", lettersOnly(p.GivenName), lettersOnly(p.Surname), domain)
}

type PersonGenerator interface {
	Person(paxType schema.PaxType) Person
}

type fakePersons struct {
	faker *gofakeit.Faker
	now   func() time.Time
	sync.Mutex
}

// NewFakePersons returns a generator backed by gofakeit. The same seed yields
// the same sequence of persons, 0 picks a random seed.
func NewFakePersons(seed int64) PersonGenerator {
	return &fakePersons{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

func (g *fakePersons) Person(paxType schema.PaxType) Person {
	g.Lock()
	defer g.Unlock()

	person := Person{
		GivenName:  g.faker.FirstName(),
		MiddleName: g.faker.MiddleName(),
		Surname:    g.faker.LastName(),
		Gender:     Female,
	}

	if g.faker.Gender() == "male" {
		person.Gender = Male
	}

	switch paxType {
	case schema.CNN:
		person.Title = g.faker.RandomString(childTitles)
		person.DateOfBirth = childDateOfBirth
	case schema.INF, schema.INS:
		person.Title = g.faker.RandomString(childTitles)
		person.DateOfBirth = infantDateOfBirth
	default:
		person.Title = strings.TrimSuffix(g.faker.NamePrefix(), ".")
		today := g.now().UTC()
		person.DateOfBirth = g.faker.DateRange(today.AddDate(-65, 0, 0), today.AddDate(-18, 0, 0)).Truncate(24 * time.Hour)
	}

	return person
}

func lettersOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			return unicode.ToLower(r)
		}

		return -1
	}, value)
}
