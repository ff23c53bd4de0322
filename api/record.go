package api

// Params is a bag of named scalar values passed to a gateway invocation
type Params map[string]string

// Get returns the value for the given name, or an empty string
func (p Params) Get(name string) string {
	if p == nil {
		return ""
	}
	return p[name]
}

// Well-known record field names
const (
	FieldName        = "Name"
	FieldIndustry    = "Industry"
	FieldDescription = "Description"
	FieldWebsite     = "Website"
)

// Record represents a single record returned by the record service.
// Fields maps field names to their string values.
type Record struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// Field returns the value of the named field, or an empty string if unset
func (r Record) Field(name string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[name]
}

// Name returns the record's display name
func (r Record) Name() string {
	return r.Field(FieldName)
}

// Industry returns the record's industry classification
func (r Record) Industry() string {
	return r.Field(FieldIndustry)
}

// Description returns the record's description, which may contain HTML markup
func (r Record) Description() string {
	return r.Field(FieldDescription)
}

// Website returns the record's website URL
func (r Record) Website() string {
	return r.Field(FieldWebsite)
}
