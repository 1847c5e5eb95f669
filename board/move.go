package board

// Move is a packed 32-bit move encoding, per spec.md §3:
//   bits 0-5:   destination square
//   bits 6-11:  source square
//   bits 12-15: flag nibble
//   bits 16-31: move-ordering score (not part of move identity)
type Move uint32

const (
	moveDestShift  = 0
	moveSrcShift   = 6
	moveFlagShift  = 12
	moveScoreShift = 16

	moveDestMask  = 0x3F
	moveSrcMask   = 0x3F
	moveFlagMask  = 0xF
	moveScoreMask = 0xFFFF
)

// Move flags, per spec.md §3. The 0x8 bit marks a promotion and the 0x4 bit
// a capture; the low two bits of a promotion flag select the piece.
const (
	FlagQuiet Move = iota
	FlagDoublePush
	FlagCastleKing
	FlagCastleQueen
	FlagCapture
	FlagEnPassant
	_reserved6
	_reserved7
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagPromoKnightCapture
	FlagPromoBishopCapture
	FlagPromoRookCapture
	FlagPromoQueenCapture
)

// NewMove packs a move from its fields. score is typically 0 at generation
// time and filled in later by move ordering via WithScore.
func NewMove(from, to Square, flag Move) Move {
	return Move(to)<<moveDestShift | Move(from)<<moveSrcShift | (flag&moveFlagMask)<<moveFlagShift
}

// From returns the source square.
func (m Move) From() Square { return Square((m >> moveSrcShift) & moveSrcMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveDestShift) & moveDestMask) }

// Flag returns the move's flag nibble.
func (m Move) Flag() Move { return (m >> moveFlagShift) & moveFlagMask }

// Score returns the embedded ordering score.
func (m Move) Score() int { return int((m >> moveScoreShift) & moveScoreMask) }

// WithScore returns m with its ordering-score bits replaced by score.
// score is clamped to the 16-bit field width.
func (m Move) WithScore(score int) Move {
	if score < 0 {
		score = 0
	}
	if score > moveScoreMask {
		score = moveScoreMask
	}
	payload := m &^ (Move(moveScoreMask) << moveScoreShift)
	return payload | (Move(score) << moveScoreShift)
}

// IsCapture reports whether the move's flag marks a capture (including
// en-passant and capturing promotions).
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEnPassant || (f >= FlagPromoKnightCapture && f <= FlagPromoQueenCapture)
}

// IsPromotion reports whether the move's flag is any promotion variant.
func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= FlagPromoKnight && f <= FlagPromoQueenCapture
}

// PromotionType returns the piece type a promotion move promotes to.
// Only meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() {
	case FlagPromoKnight, FlagPromoKnightCapture:
		return Knight
	case FlagPromoBishop, FlagPromoBishopCapture:
		return Bishop
	case FlagPromoRook, FlagPromoRookCapture:
		return Rook
	case FlagPromoQueen, FlagPromoQueenCapture:
		return Queen
	default:
		return Empty
	}
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKing || f == FlagCastleQueen
}

// Equal compares two moves by payload only (From/To/Flag), ignoring the
// embedded ordering score, per spec.md §3.
func (m Move) Equal(other Move) bool {
	const payloadMask = Move(moveDestMask<<moveDestShift | moveSrcMask<<moveSrcShift | moveFlagMask<<moveFlagShift)
	return m&payloadMask == other&payloadMask
}

// promoSuffix maps a promotion piece type to its UCI long-algebraic suffix letter.
var promoSuffix = map[PieceType]byte{
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// String renders the move in UCI long-algebraic notation, e.g. "e2e4" or
// "a7a8q".
func (m Move) String() string {
	s := algebraic(m.From()) + algebraic(m.To())
	if m.IsPromotion() {
		s += string(promoSuffix[m.PromotionType()])
	}
	return s
}

// NullMove is the zero move, used as a "no move found" sentinel (e.g. an
// empty killer slot or an unset TT best-move).
const NullMove Move = 0
