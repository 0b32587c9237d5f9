//go:generate mockgen -package=mocks -destination=../mocks/mock_person.go github.com/gocircum/dynproxy/interfaces Person

package interfaces

// Person is the capability set a subject must implement to be wrapped by
// the demonstration proxy.
type Person interface {
	// Introduce prints the person's name.
	Introduce(name string)
	// SayAge prints the person's age.
	SayAge(age string)
	// SayWhereFrom prints where the person lives.
	SayWhereFrom(city, country string)
}
