package restspec

// CUE schemas the loader validates spec files against before decoding.
// Validation failures surface spec drift with a path to the offending field,
// which a plain json.Unmarshal would silently accept or report poorly.

const endpointSchema = `
#ParamType: "string" | "list" | "number" | "boolean" | "time" | "enum"

#Part: {
	type:        #ParamType
	description: string
	required?:   bool
}

#Param: {
	type:        #ParamType
	description: string
	options?: [...string]
	default?: _
}

#Path: {
	path:    =~"^/"
	methods: [...("GET" | "HEAD" | "POST" | "PUT" | "DELETE" | "PATCH")] & [_, ...]
	parts?: {[string]: #Part}
}

#Body: {
	description: string
	required?:   bool
	serialize?:  "bulk"
}

#Endpoint: {
	documentation: {
		url:         string
		description: string
	}
	stability: "stable" | "beta" | "experimental"
	url: paths: [...#Path] & [_, ...]
	params: {[string]: #Param}
	body?: #Body
}

close({[=~"^[a-z0-9_]+(\\.[a-z0-9_]+)?$"]: #Endpoint})
`

const commonSchema = `
#ParamType: "string" | "list" | "number" | "boolean" | "time" | "enum"

{
	documentation: string
	params: {[string]: {
		type:        #ParamType
		description: string
		options?: [...string]
		default?: _
	}}
}
`
