package request

type parseState string

const (
	stateStart           parseState = "start"
	stateStartLineParsed parseState = "start line parsed"
	stateHeadersParsed   parseState = "headers parsed"
	stateBodyRead        parseState = "body read"
	stateDone            parseState = "done"
)

func newParseState() parseState {
	return stateStart
}

func (ps parseState) advance() parseState {
	switch ps {
	case stateStart:
		return stateStartLineParsed
	case stateStartLineParsed:
		return stateHeadersParsed
	case stateHeadersParsed:
		return stateBodyRead
	case stateBodyRead:
		return stateDone
	default:
		panic("invalid parse state advance: " + ps)
	}
}
