package intermediary

// BlanklineReason records why a synthetic blank line was inserted. It is
// diagnostic only: reasons never affect behavior, they exist so debug logs
// can explain the policy's decisions.
type BlanklineReason int

const (
	ReasonComesAfterEnd BlanklineReason = iota
	ReasonConditional
	ReasonClassOrModule
	ReasonDoKeyword
	ReasonEndOfRequireBlock
	ReasonCommentAfterEnd
)

func (r BlanklineReason) String() string {
	switch r {
	case ReasonComesAfterEnd:
		return "comes_after_end"
	case ReasonConditional:
		return "conditional"
	case ReasonClassOrModule:
		return "class_or_module"
	case ReasonDoKeyword:
		return "do_keyword"
	case ReasonEndOfRequireBlock:
		return "end_of_require_block"
	case ReasonCommentAfterEnd:
		return "comment_after_end"
	default:
		return "unknown"
	}
}
