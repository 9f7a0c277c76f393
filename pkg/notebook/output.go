package notebook

// OutputType is the nbformat output_type tag.
type OutputType string

const (
	OutputStream        OutputType = "stream"
	OutputError         OutputType = "error"
	OutputDisplayData   OutputType = "display_data"
	OutputExecuteResult OutputType = "execute_result"
)

// Output is one output of a code cell. It is implemented by [*Stream],
// [*Error], [*DisplayData] and [*ExecuteResult] only.
type Output interface {
	OutputType() OutputType
	isOutput()
}

// MimeBundle maps a mime type to its payload. Text and base64 payloads are
// strings; JSON mime types hold decoded JSON values.
type MimeBundle map[string]any

// Stream is text written to stdout or stderr.
type Stream struct {
	Name string
	Text string
}

// Error is a raised exception.
type Error struct {
	EName     string
	EValue    string
	Traceback []string
}

// DisplayData is a rich output produced by a display call.
type DisplayData struct {
	Data     MimeBundle
	Metadata Document
}

// ExecuteResult is the rich value of the last expression of a cell.
type ExecuteResult struct {
	Data           MimeBundle
	Metadata       Document
	ExecutionCount int
}

func (*Stream) OutputType() OutputType        { return OutputStream }
func (*Error) OutputType() OutputType         { return OutputError }
func (*DisplayData) OutputType() OutputType   { return OutputDisplayData }
func (*ExecuteResult) OutputType() OutputType { return OutputExecuteResult }

func (*Stream) isOutput()        {}
func (*Error) isOutput()         {}
func (*DisplayData) isOutput()   {}
func (*ExecuteResult) isOutput() {}

// NewStream creates a stream output.
func NewStream(name, text string) *Stream {
	return &Stream{Name: name, Text: text}
}

// NewError creates an error output.
func NewError(ename, evalue string, traceback []string) *Error {
	if traceback == nil {
		traceback = []string{}
	}
	return &Error{EName: ename, EValue: evalue, Traceback: traceback}
}

// NewDisplayData creates a display_data output with empty metadata.
func NewDisplayData(data MimeBundle) *DisplayData {
	if data == nil {
		data = MimeBundle{}
	}
	return &DisplayData{Data: data, Metadata: Document{}}
}

// NewExecuteResult creates an execute_result output with empty metadata.
func NewExecuteResult(count int, data MimeBundle) *ExecuteResult {
	if data == nil {
		data = MimeBundle{}
	}
	return &ExecuteResult{Data: data, Metadata: Document{}, ExecutionCount: count}
}
