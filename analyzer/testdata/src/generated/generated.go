// Code generated by hand for testing. DO NOT EDIT.

package generated

//glue:generate
type Empty struct{} // want `Empty: cannot generate conversions for a fieldless record`
