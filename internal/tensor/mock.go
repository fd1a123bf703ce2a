package tensor

// Verify that RecordingContractor implements ArrayContractor.
var _ ArrayContractor = (*RecordingContractor)(nil)

// ContractCall is one recorded ArrayContractor.Contract invocation.
type ContractCall struct {
	Labels [][]string // Operand labels as passed in
	Output []string   // Requested output (nil means default)
	Result []string   // Labels of the returned array
}

// RecordingContractor wraps an ArrayContractor and records every call.
// It is used in tests to check which tensors were grouped into one contraction.
type RecordingContractor struct {
	inner ArrayContractor
	calls []ContractCall
}

// NewRecordingContractor creates a RecordingContractor around inner.
func NewRecordingContractor(inner ArrayContractor) *RecordingContractor {
	return &RecordingContractor{inner: inner}
}

// Name returns the wrapped contractor's name.
func (m *RecordingContractor) Name() string {
	return "recording(" + m.inner.Name() + ")"
}

// Contract records the call and delegates to the wrapped contractor.
func (m *RecordingContractor) Contract(operands []*RawTensor, labels [][]string, output []string) (*RawTensor, []string, error) {
	call := ContractCall{
		Labels: make([][]string, len(labels)),
		Output: append([]string(nil), output...),
	}
	for i, ls := range labels {
		call.Labels[i] = append([]string(nil), ls...)
	}

	raw, result, err := m.inner.Contract(operands, labels, output)
	call.Result = append([]string(nil), result...)
	m.calls = append(m.calls, call)
	return raw, result, err
}

// Calls returns the recorded calls in order.
func (m *RecordingContractor) Calls() []ContractCall {
	return m.calls
}

// Reset forgets all recorded calls.
func (m *RecordingContractor) Reset() {
	m.calls = nil
}
