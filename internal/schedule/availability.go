package schedule

// SlotAvailability pairs a generated slot with its booked flag. This is a
// display aid only; the race between display and confirmation is resolved at
// confirmation time.
type SlotAvailability struct {
	Slot
	Booked bool
}

// Partition marks each generated slot as booked when its label appears in
// bookedLabels. Matching is exact on the label string, which is why Generate
// must be deterministic.
func Partition(slots []Slot, bookedLabels []string) []SlotAvailability {
	booked := make(map[string]struct{}, len(bookedLabels))
	for _, label := range bookedLabels {
		booked[label] = struct{}{}
	}

	result := make([]SlotAvailability, len(slots))
	for i, s := range slots {
		_, taken := booked[s.Label]
		result[i] = SlotAvailability{Slot: s, Booked: taken}
	}

	return result
}
