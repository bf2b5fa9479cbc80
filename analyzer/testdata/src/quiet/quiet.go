package quiet

//glue:generate
type Status int

//glue:generate
type Retry struct {
	Count int
	Delay int `glue:"skip"`
}

//glue:generate
type Hidden struct { // want `Hidden: cannot exclude every field`
	A int `glue:"default"`
}

func (Hidden) Default() Hidden { return Hidden{} }
