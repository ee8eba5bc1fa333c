package getopt

// Result holds the outcome of one successful parse.
//
// Flags contains an entry for every declared Flag option, so lookups
// are total over the declared set; options that did not occur on the
// command line are false. Values contains an entry only for each Value
// option that was actually supplied; use the comma-ok form to
// distinguish an absent option from an empty argument. NonOptions
// holds every element that was not consumed as an option or an option
// argument, in its original relative order.
type Result struct {
	Flags      map[string]bool
	Values     map[string]string
	NonOptions []string
}

func newResult(spec Spec) *Result {
	result := &Result{
		Flags:      map[string]bool{},
		Values:     map[string]string{},
		NonOptions: []string{},
	}

	for _, opt := range spec {
		if opt.Kind == Flag {
			result.Flags[opt.Name] = false
		}
	}

	return result
}
