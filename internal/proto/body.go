package proto

// Body returns the wire body of m. Servers that predate the content field
// carry it in Message.
func (m *Message) Body() string {
	if c := m.GetContent(); c != "" {
		return c
	}
	return m.GetMessage()
}
