package catalog

import "strings"

// MemberKind classifies a member of a builtin object.
type MemberKind uint8

const (
	Property MemberKind = iota
	Method
	Event
)

func (k MemberKind) String() string {
	switch k {
	case Property:
		return "property"
	case Method:
		return "method"
	case Event:
		return "event"
	}
	return "unknown"
}

// Member — один член встроенного объекта.
type Member struct {
	Name      string
	Kind      MemberKind
	Signature string // только у методов, например "(text)"
	Doc       string
}

// Label возвращает имя с сигнатурой для методов.
func (m *Member) Label() string {
	if m.Kind == Method {
		return m.Name + m.Signature
	}
	return m.Name
}

// Object — встроенный объект среды исполнения с его членами.
type Object struct {
	Name    string
	Doc     string
	Members []Member
}

// Keyword — ключевое слово диалекта.
type Keyword struct {
	Name string
	Doc  string
}

// Keywords returns the dialect keywords in declaration order.
func Keywords() []Keyword { return keywords }

// Objects returns the builtin objects in declaration order.
func Objects() []Object { return objects }

// IsKeyword reports whether name is a dialect keyword. Диалект
// регистронезависимый, поэтому все поиски идут по нижнему регистру.
func IsKeyword(name string) bool {
	_, ok := keywordIndex[strings.ToLower(name)]
	return ok
}

// LookupKeyword returns the keyword named name, case-insensitively.
func LookupKeyword(name string) (Keyword, bool) {
	kw, ok := keywordIndex[strings.ToLower(name)]
	return kw, ok
}

// LookupObject returns the builtin object named name, case-insensitively.
func LookupObject(name string) (*Object, bool) {
	obj, ok := objectIndex[strings.ToLower(name)]
	return obj, ok
}

// LookupMember returns the object's member named name, case-insensitively.
func (o *Object) LookupMember(name string) (*Member, bool) {
	if o == nil {
		return nil, false
	}
	low := strings.ToLower(name)
	for i := range o.Members {
		if strings.ToLower(o.Members[i].Name) == low {
			return &o.Members[i], true
		}
	}
	return nil, false
}

var (
	keywordIndex = make(map[string]Keyword, len(keywords))
	objectIndex  = make(map[string]*Object, len(objects))
)

func init() {
	for _, kw := range keywords {
		keywordIndex[strings.ToLower(kw.Name)] = kw
	}
	for i := range objects {
		objectIndex[strings.ToLower(objects[i].Name)] = &objects[i]
	}
}
