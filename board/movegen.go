package board

// Move-ordering constants, per spec.md §4.4.
const (
	orderingCaptureBase     = 2048
	orderingPromotionBonus  = 3000
	orderingQueenPromoNudge = 1
)

// mvvLva[victim][attacker] is the Most-Valuable-Victim/Least-Valuable-
// Attacker capture-ordering table, built from PieceValue at init time.
// Grounded on engine/searchutil.go's capture-ordering intent, restated as a
// precomputed table per spec.md §4.4's literal "MVV/LVA[captured][attacker]".
var mvvLva [NumPieceTypes][NumPieceTypes]int32

func init() {
	for v := 0; v < NumPieceTypes; v++ {
		for a := 0; a < NumPieceTypes; a++ {
			mvvLva[v][a] = PieceValue[v]*10 - PieceValue[a]
		}
	}
}

func promoFlags(capture bool) [4]Move {
	if capture {
		return [4]Move{FlagPromoKnightCapture, FlagPromoBishopCapture, FlagPromoRookCapture, FlagPromoQueenCapture}
	}
	return [4]Move{FlagPromoKnight, FlagPromoBishop, FlagPromoRook, FlagPromoQueen}
}

func promoScoreBonus(flag Move) int32 {
	bonus := int32(orderingPromotionBonus)
	if flag == FlagPromoQueen || flag == FlagPromoQueenCapture {
		bonus += orderingQueenPromoNudge
	}
	return bonus
}

// GenerateMoves returns all pseudo-legal moves for the side to move.
// Legality (king safety, castling validity) is enforced by MakeMove, per
// spec.md §4.4.
func GenerateMoves(p *Position) []Move {
	moves := make([]Move, 0, 80)
	us := p.sideToMove
	genKnightMoves(p, us, &moves, true)
	genSliderMoves(p, us, Bishop, &moves, true)
	genSliderMoves(p, us, Rook, &moves, true)
	genSliderMoves(p, us, Queen, &moves, true)
	genKingMoves(p, us, &moves, true)
	genCastles(p, us, &moves)
	genPawnMoves(p, us, &moves, true, true, true)
	return moves
}

// GenerateCaptures returns captures only, including en-passant and
// capturing promotions.
func GenerateCaptures(p *Position) []Move {
	moves := make([]Move, 0, 32)
	us := p.sideToMove
	genKnightMoves(p, us, &moves, false)
	genSliderMoves(p, us, Bishop, &moves, false)
	genSliderMoves(p, us, Rook, &moves, false)
	genSliderMoves(p, us, Queen, &moves, false)
	genKingMoves(p, us, &moves, false)
	genPawnMoves(p, us, &moves, false, false, true)
	return moves
}

// GeneratePromotions returns non-capturing pawn push-promotions only.
func GeneratePromotions(p *Position) []Move {
	moves := make([]Move, 0, 8)
	genPawnMoves(p, p.sideToMove, &moves, false, true, false)
	return moves
}

func genKnightMoves(p *Position, us Color, moves *[]Move, includeQuiets bool) {
	empty := ^p.AllOccupied()
	enemy := p.occ[us.Opponent()]
	knights := p.pieceBB[us][Knight]
	for knights != 0 {
		from := popLSB(&knights)
		attacks := knightAttacks[from]
		if includeQuiets {
			quiets := attacks & empty
			for quiets != 0 {
				to := popLSB(&quiets)
				*moves = append(*moves, NewMove(from, to, FlagQuiet))
			}
		}
		caps := attacks & enemy
		for caps != 0 {
			to := popLSB(&caps)
			score := mvvLva[p.mailbox[to]][Knight] + orderingCaptureBase
			*moves = append(*moves, NewMove(from, to, FlagCapture).WithScore(int(score)))
		}
	}
}

func genKingMoves(p *Position, us Color, moves *[]Move, includeQuiets bool) {
	empty := ^p.AllOccupied()
	enemy := p.occ[us.Opponent()]
	from := p.KingSquare(us)
	attacks := kingAttacks[from]
	if includeQuiets {
		quiets := attacks & empty
		for quiets != 0 {
			to := popLSB(&quiets)
			*moves = append(*moves, NewMove(from, to, FlagQuiet))
		}
	}
	caps := attacks & enemy
	for caps != 0 {
		to := popLSB(&caps)
		score := mvvLva[p.mailbox[to]][King] + orderingCaptureBase
		*moves = append(*moves, NewMove(from, to, FlagCapture).WithScore(int(score)))
	}
}

func genSliderMoves(p *Position, us Color, pt PieceType, moves *[]Move, includeQuiets bool) {
	occAll := p.AllOccupied()
	empty := ^occAll
	enemy := p.occ[us.Opponent()]
	pieces := p.pieceBB[us][pt]
	for pieces != 0 {
		from := popLSB(&pieces)
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, occAll)
		case Rook:
			attacks = RookAttacks(from, occAll)
		case Queen:
			attacks = QueenAttacks(from, occAll)
		}
		if includeQuiets {
			quiets := attacks & empty
			for quiets != 0 {
				to := popLSB(&quiets)
				*moves = append(*moves, NewMove(from, to, FlagQuiet))
			}
		}
		caps := attacks & enemy
		for caps != 0 {
			to := popLSB(&caps)
			score := mvvLva[p.mailbox[to]][pt] + orderingCaptureBase
			*moves = append(*moves, NewMove(from, to, FlagCapture).WithScore(int(score)))
		}
	}
}

// genCastles emits castling moves from the king's home square when the
// intermediate squares are empty and a rook occupies the corner. Rights and
// attack-freedom are re-checked inside MakeMove, per spec.md §4.4.
func genCastles(p *Position, us Color, moves *[]Move) {
	if us == White {
		if p.castlingRights&CastleWK != 0 && p.mailbox[5] == Empty && p.mailbox[6] == Empty &&
			p.mailbox[7] == Rook && p.ColorOn(7) == White {
			*moves = append(*moves, NewMove(4, 6, FlagCastleKing))
		}
		if p.castlingRights&CastleWQ != 0 && p.mailbox[1] == Empty && p.mailbox[2] == Empty && p.mailbox[3] == Empty &&
			p.mailbox[0] == Rook && p.ColorOn(0) == White {
			*moves = append(*moves, NewMove(4, 2, FlagCastleQueen))
		}
		return
	}
	if p.castlingRights&CastleBK != 0 && p.mailbox[61] == Empty && p.mailbox[62] == Empty &&
		p.mailbox[63] == Rook && p.ColorOn(63) == Black {
		*moves = append(*moves, NewMove(60, 62, FlagCastleKing))
	}
	if p.castlingRights&CastleBQ != 0 && p.mailbox[57] == Empty && p.mailbox[58] == Empty && p.mailbox[59] == Empty &&
		p.mailbox[56] == Rook && p.ColorOn(56) == Black {
		*moves = append(*moves, NewMove(60, 58, FlagCastleQueen))
	}
}

// genPawnMoves generates pawn pushes, captures, en-passant and promotions
// by shift-and-mask, per spec.md §4.4.
func genPawnMoves(p *Position, us Color, moves *[]Move, wantQuietNonPromo, wantQuietPromo, wantCaptures bool) {
	pawns := p.pieceBB[us][Pawn]
	empty := ^p.AllOccupied()
	enemy := p.occ[us.Opponent()]

	var promoRank int
	var pushShift, eastShift, westShift int
	var doubleStartRank int
	if us == White {
		promoRank = 7
		pushShift, eastShift, westShift = 8, 9, 7
		doubleStartRank = 1
	} else {
		promoRank = 0
		pushShift, eastShift, westShift = -8, -7, -9
		doubleStartRank = 6
	}

	if wantQuietNonPromo || wantQuietPromo {
		var singlePush Bitboard
		if us == White {
			singlePush = (pawns << 8) & empty
		} else {
			singlePush = (pawns >> 8) & empty
		}
		sp := singlePush
		for sp != 0 {
			to := popLSB(&sp)
			from := to - Square(pushShift)
			if to.Rank() == promoRank {
				if wantQuietPromo {
					emitPromotions(moves, from, to, false)
				}
				continue
			}
			if wantQuietNonPromo {
				*moves = append(*moves, NewMove(from, to, FlagQuiet))
			}
		}

		if wantQuietNonPromo {
			var doublePush Bitboard
			startRankMask := rankMask[doubleStartRank]
			if us == White {
				doublePush = ((pawns & startRankMask) << 8 & empty) << 8 & empty
			} else {
				doublePush = ((pawns & startRankMask) >> 8 & empty) >> 8 & empty
			}
			dp := doublePush
			for dp != 0 {
				to := popLSB(&dp)
				from := to - Square(2*pushShift)
				*moves = append(*moves, NewMove(from, to, FlagDoublePush))
			}
		}
	}

	if wantCaptures {
		var eastAtt, westAtt Bitboard
		if us == White {
			eastAtt = (pawns &^ fileH) << 9
			westAtt = (pawns &^ fileA) << 7
		} else {
			eastAtt = (pawns &^ fileH) >> 7
			westAtt = (pawns &^ fileA) >> 9
		}

		epBB := Bitboard(0)
		if p.epSquare != NoSquare {
			epBB = bit(p.epSquare)
		}

		emitPawnCaptures := func(att Bitboard, shift int) {
			targets := att & (enemy | epBB)
			for targets != 0 {
				to := popLSB(&targets)
				from := to - Square(shift)
				if to == p.epSquare && p.mailbox[to] == Empty {
					*moves = append(*moves, NewMove(from, to, FlagEnPassant))
					continue
				}
				if to.Rank() == promoRank {
					emitPromotions(moves, from, to, true)
					continue
				}
				score := mvvLva[p.mailbox[to]][Pawn] + orderingCaptureBase
				*moves = append(*moves, NewMove(from, to, FlagCapture).WithScore(int(score)))
			}
		}
		emitPawnCaptures(eastAtt, eastShift)
		emitPawnCaptures(westAtt, westShift)
	}
}

func emitPromotions(moves *[]Move, from, to Square, capture bool) {
	flags := promoFlags(capture)
	for _, flag := range flags {
		m := NewMove(from, to, flag)
		*moves = append(*moves, m.WithScore(int(promoScoreBonus(flag))))
	}
}

// HasLegalMoves reports whether any pseudo-legal move for the side to move
// is actually legal (survives MakeMove's validation).
func (p *Position) HasLegalMoves() bool {
	for _, m := range GenerateMoves(p) {
		if p.MakeMove(m) {
			p.UndoMove()
			return true
		}
	}
	return false
}

// InCheckmate reports mate: in check with no legal reply.
func (p *Position) InCheckmate() bool {
	return p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}

// InStalemate reports stalemate: not in check but no legal move.
func (p *Position) InStalemate() bool {
	return !p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}
