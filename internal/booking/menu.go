package booking

// Menu tracks which appointment row has its action menu open. At most one
// menu is open at a time.
type Menu struct {
	openID int64
	open   bool
}

// Toggle closes the menu of id when it is the open one, otherwise opens it
// and implicitly closes any other.
func (m *Menu) Toggle(id int64) {
	if m.open && m.openID == id {
		m.CloseAll()
		return
	}
	m.openID = id
	m.open = true
}

func (m *Menu) CloseAll() {
	m.openID = 0
	m.open = false
}

// Open returns the identity whose menu is open.
func (m *Menu) Open() (int64, bool) {
	return m.openID, m.open
}

func (m *Menu) IsOpen(id int64) bool {
	return m.open && m.openID == id
}
