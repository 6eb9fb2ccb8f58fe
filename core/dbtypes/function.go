package dbtypes

// FunctionArg is one input argument of a stored function.
type FunctionArg struct {
	Name     string
	DBType   string
	Optional bool
}

// Function describes a stored function callable as an RPC.
type Function struct {
	Schema     string
	Name       string
	Args       []FunctionArg
	Returns    string
	ReturnsSet bool
	Comment    string
}

// RequiredArgs returns the names of arguments without a default.
func (f *Function) RequiredArgs() []string {
	var names []string
	for _, a := range f.Args {
		if !a.Optional {
			names = append(names, a.Name)
		}
	}
	return names
}
