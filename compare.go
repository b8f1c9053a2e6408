package seqmarked

// Compare compares the versions a and b and returns -1, 0 or +1.
// It can be passed directly to slices.SortFunc and friends.
//
// Versions are ordered by sequence number. With equal sequence numbers a
// tombstone is greater than a normal value. All versions with sequence
// number 0 are equal and less than any other version.
func Compare[D any](a, b SeqMarked[D]) int {
	return a.OrderKey().Compare(b.OrderKey())
}

// Compare compares s with other, see Compare.
func (s SeqMarked[D]) Compare(other SeqMarked[D]) int {
	return Compare(s, other)
}

// Less reports whether s is older than other.
func (s SeqMarked[D]) Less(other SeqMarked[D]) bool {
	return Compare(s, other) < 0
}

// Equal reports whether s and other are equal for ordering purposes.
// The payloads are not compared.
func (s SeqMarked[D]) Equal(other SeqMarked[D]) bool {
	return Compare(s, other) == 0
}

// Max returns the newer of a and b, b if they are equal.
func Max[D any](a, b SeqMarked[D]) SeqMarked[D] {
	if Compare(a, b) > 0 {
		return a
	}

	return b
}

// Min returns the older of a and b, a if they are equal.
func Min[D any](a, b SeqMarked[D]) SeqMarked[D] {
	if Compare(a, b) > 0 {
		return b
	}

	return a
}

// Latest returns the authoritative version among versions and false if
// versions is empty. The first of several equal versions wins.
func Latest[D any](versions ...SeqMarked[D]) (SeqMarked[D], bool) {
	if len(versions) == 0 {
		return SeqMarked[D]{}, false //nolint:exhaustruct
	}

	latest := versions[0]
	for _, v := range versions[1:] {
		if Compare(v, latest) > 0 {
			latest = v
		}
	}

	return latest, true
}
