package skipnav

// Stats is a snapshot of the operation counters of a Map or Set.
type Stats struct {
	Inserts      int64
	Replacements int64
	Removals     int64
	Comparisons  int64
	// HeadUpdates counts writes to the head array caused by inserts and
	// removals. Clear is not counted.
	HeadUpdates int64
}

type metrics struct {
	inserts      int64
	replacements int64
	removals     int64
	comparisons  int64
	headUpdates  int64
}

func (m *metrics) incInsert()      { m.inserts++ }
func (m *metrics) incReplacement() { m.replacements++ }
func (m *metrics) incRemoval()     { m.removals++ }
func (m *metrics) incComparison()  { m.comparisons++ }
func (m *metrics) incHeadUpdate()  { m.headUpdates++ }

func (m *metrics) snapshot() Stats {
	return Stats{
		Inserts:      m.inserts,
		Replacements: m.replacements,
		Removals:     m.removals,
		Comparisons:  m.comparisons,
		HeadUpdates:  m.headUpdates,
	}
}
