package parser

import "strings"

// ForwardingArgs derives the list of parameter names used to call through to
// the interface from a typed argument list. Default values are dropped, the
// parameter they belong to is kept:
//
//	int x, float y = 1.0f, const char *z  ->  x, y, z
func ForwardingArgs(typedArgs string) string {
	typedArgs = strings.TrimSpace(typedArgs)
	if typedArgs == "" || typedArgs == "void" {
		return ""
	}

	tokens := strings.Split(typedArgs, " ")
	var names []string
	candidate := ""
	inDefault := false

	for i, token := range tokens {
		if token == "" {
			continue
		}
		last := i == len(tokens)-1
		endsParam := strings.HasSuffix(token, ",")

		if inDefault {
			if endsParam {
				inDefault = false
			}
			continue
		}

		if token == "=" {
			names = append(names, candidate)
			inDefault = true
			continue
		}

		// x=1 written without spaces
		if name, _, found := strings.Cut(token, "="); found && name != "" {
			names = append(names, parameterName(name))
			inDefault = !endsParam
			continue
		}

		candidate = parameterName(token)
		if endsParam || last {
			names = append(names, candidate)
		}
	}

	return strings.Join(names, ", ")
}

// parameterName strips the decorations a declarator carries around its name
func parameterName(token string) string {
	name := strings.TrimSuffix(token, ",")
	name = strings.TrimLeft(name, "*&")
	if i := strings.Index(name, "["); i > 0 {
		name = name[:i]
	}
	return name
}
