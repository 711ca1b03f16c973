package model

// Collection is the ordered sequence of case records, insertion order
// = log order. It is a value type: Append returns a new Collection and
// never mutates the receiver, so a caller holding an older value
// observes no change.
type Collection struct {
	records []Record
}

// NewCollection builds a collection from records in the given order.
func NewCollection(records ...Record) Collection {
	rs := make([]Record, len(records))
	copy(rs, records)
	return Collection{records: rs}
}

// Len returns the number of records
func (c Collection) Len() int {
	return len(c.records)
}

// Records returns a copy of the records in log order.
func (c Collection) Records() []Record {
	rs := make([]Record, len(c.records))
	copy(rs, c.records)
	return rs
}

// At returns the record at position i in log order.
func (c Collection) At(i int) Record {
	return c.records[i]
}

// NextNumber returns the case number the next append will assign:
// one greater than the maximum existing number, or 1 for an empty
// collection. Max-based assignment tolerates externally edited files
// with gaps or out-of-order numbers.
func (c Collection) NextNumber() int {
	next := 1
	for _, r := range c.records {
		if r.Number >= next {
			next = r.Number + 1
		}
	}
	return next
}

// Append validates the fields, assigns the next case number and
// returns a new collection with the record appended, along with the
// record itself. The receiver is left unchanged.
func (c Collection) Append(f Fields) (Collection, Record, error) {
	if err := f.Validate(); err != nil {
		return Collection{}, Record{}, err
	}

	rec := Record{
		Number:         c.NextNumber(),
		PatientID:      f.PatientID,
		Age:            f.Age,
		Date:           f.Date,
		Hospital:       f.Hospital,
		Consultant:     f.Consultant,
		Diagnosis:      f.Diagnosis,
		Procedure:      f.Procedure,
		Anaesthesia:    f.Anaesthesia,
		Outcome:        f.Outcome,
		Notes:          f.Notes,
		MyRole:         f.MyRole,
		PrimarySurgeon: f.PrimarySurgeon,
		Assistant:      f.Assistant,
	}

	rs := make([]Record, len(c.records), len(c.records)+1)
	copy(rs, c.records)
	rs = append(rs, rec)
	return Collection{records: rs}, rec, nil
}
