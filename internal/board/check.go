package board

// CheckKind classifies how a king is threatened.
type CheckKind uint8

const (
	SingleCheck CheckKind = iota
	DiscoveryCheck
	DoubleCheck
	Checkmate
)

// String returns the classification name.
func (k CheckKind) String() string {
	switch k {
	case SingleCheck:
		return "check"
	case DiscoveryCheck:
		return "discovered check"
	case DoubleCheck:
		return "double check"
	case Checkmate:
		return "checkmate"
	default:
		return "unknown"
	}
}

// Check describes a detected threat against a king, carrying the involved
// records for explainability. Attackers holds one record for single and
// discovered checks and two for double checks.
type Check struct {
	Kind      CheckKind
	King      PieceRecord
	Attackers []PieceRecord
}

// threats enumerates the attacker's pieces whose capture sets intersect the
// defender's king mask. The collision snapshot is built once per call, not
// per piece. With earlyExit set the scan stops at the first threat, which
// is all a boolean check query needs; the classifying path scans every
// opposing piece to tell single from double check.
func threats(r *Register, defender Team, earlyExit bool) ([]PieceRecord, error) {
	kingMask, err := r.KingMask(defender)
	if err != nil {
		return nil, err
	}
	masks := NewCollisionMasks(r)

	var found []PieceRecord
	for _, rec := range r.Pieces(defender.Other()) {
		ms, err := GenerateMoves(rec, masks)
		if err != nil {
			return nil, err
		}
		for _, sq := range ms.Captures {
			if !kingMask.IsSet(sq) {
				continue
			}
			found = append(found, rec)
			if earlyExit {
				return found, nil
			}
			break
		}
	}
	return found, nil
}

// InCheck reports whether the given side's king is currently attacked.
// Register corruption (missing or duplicated king) propagates as an error
// rather than degrading to a false negative.
func InCheck(turn Team, r *Register) (bool, error) {
	found, err := threats(r, turn, true)
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

// ClassifyCheck scans all threats against the given side's king and
// classifies them. It returns nil when the king is safe.
//
// lastMoved is the destination square of the most recent move, or NoSquare
// when unknown. A lone checker sitting somewhere other than lastMoved can
// only have been revealed by that move, so it is a discovered check; with
// no move context every lone checker is reported as a plain single check.
// Upgrading to Checkmate needs legal-move knowledge and is done by the
// position layer.
func ClassifyCheck(turn Team, r *Register, lastMoved Square) (*Check, error) {
	found, err := threats(r, turn, false)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}

	king, err := r.KingRecord(turn)
	if err != nil {
		return nil, err
	}

	chk := &Check{King: king, Attackers: found}
	switch {
	case len(found) > 1:
		chk.Kind = DoubleCheck
		chk.Attackers = found[:2]
	case lastMoved.IsValid() && found[0].Square != lastMoved:
		chk.Kind = DiscoveryCheck
	default:
		chk.Kind = SingleCheck
	}
	return chk, nil
}
