package request

// MethodType identifies one of the standard HTTP methods.
// OTHER is used for any token that is not one of them.
type MethodType uint8

const (
	OTHER MethodType = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
)

var methodNames = [...]string{
	OTHER:   "OTHER",
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
}

var knownMethods = map[string]MethodType{
	"GET":     GET,
	"HEAD":    HEAD,
	"POST":    POST,
	"PUT":     PUT,
	"DELETE":  DELETE,
	"CONNECT": CONNECT,
	"OPTIONS": OPTIONS,
	"TRACE":   TRACE,
}

func (mt MethodType) String() string {
	if int(mt) < len(methodNames) {
		return methodNames[mt]
	}
	return "OTHER"
}

// Method is a request method. For OTHER it carries the token as received.
type Method struct {
	typ   MethodType
	token string
}

// ParseMethod resolves a method token. Matching is exact and case sensitive,
// so "get" is an OTHER method with token "get".
func ParseMethod(token string) Method {
	if mt, ok := knownMethods[token]; ok {
		return Method{typ: mt, token: token}
	}
	return Method{typ: OTHER, token: token}
}

// NewMethod returns the Method for a standard method type.
func NewMethod(mt MethodType) Method {
	if mt == OTHER || int(mt) >= len(methodNames) {
		return Method{typ: OTHER}
	}
	return Method{typ: mt, token: methodNames[mt]}
}

// Type returns the method type.
func (m Method) Type() MethodType {
	return m.typ
}

// IsOther reports whether the token did not match a standard method.
func (m Method) IsOther() bool {
	return m.typ == OTHER
}

// String returns the method token.
func (m Method) String() string {
	return m.token
}
