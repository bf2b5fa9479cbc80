package a

import "time"

// Person is fine.
//
//glue:generate
type Person struct {
	Name string
}

//glue:generate
type Config struct {
	Name    string
	Timeout time.Duration `glue:"default"`
}

func (Config) Default() Config { return Config{Timeout: time.Second} }

//glue:generate
type Hidden struct { // want `Hidden: cannot exclude every field`
	A int `glue:"default"`
	B int `glue:"default"`
}

func (Hidden) Default() Hidden { return Hidden{} }

//glue:generate
type Empty struct{} // want `Empty: cannot generate conversions for a fieldless record`

//glue:generate
type Status int // want `Status: can only generate conversions for records or tagged unions`

//glue:generate
type Retry struct {
	Count int
	Delay time.Duration `glue:"skip"` // want `Retry.Delay: unrecognized annotation form`
}

type Plain struct{}
