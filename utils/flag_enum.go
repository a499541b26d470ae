package utils

import "strings"

// StringEnum повторяемый флаг (--group A --group B)
type StringEnum []string

func (i *StringEnum) String() string {
	return strings.Join(*i, ",")
}

func (i *StringEnum) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// Type нужен pflag'у, чтобы cobra показывала тип в справке
func (i *StringEnum) Type() string {
	return "strings"
}
