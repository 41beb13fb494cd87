package board

import "strings"

// SAN renders a legal move in Standard Algebraic Notation for the current
// position. The check and mate suffixes are determined by applying the move,
// probing the resulting position and undoing it.
func (p *Position) SAN(m Move) string {
	var sb strings.Builder

	switch {
	case m.Flags&FlagKingCastle != 0:
		sb.WriteString("O-O")
	case m.Flags&FlagQueenCastle != 0:
		sb.WriteString("O-O-O")
	default:
		if m.Piece != Pawn {
			sb.WriteByte("PNBRQK"[m.Piece])
			sb.WriteString(p.disambiguator(m))
		}

		if m.IsCapture() {
			if m.Piece == Pawn {
				sb.WriteByte('a' + byte(m.From.File()))
			}
			sb.WriteByte('x')
		}

		sb.WriteString(m.To.String())

		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte("PNBRQK"[m.Promotion])
		}
	}

	p.MakeMove(m)
	if p.IsCheckmate() {
		sb.WriteByte('#')
	} else if p.InCheck() {
		sb.WriteByte('+')
	}
	p.UndoMove()

	return sb.String()
}

// disambiguator returns the origin qualifier required when other legal moves
// of the same piece kind reach the same destination: the origin file if the
// origins differ in file, else the origin rank, else the full origin square.
func (p *Position) disambiguator(m Move) string {
	sameFile := false
	sameRank := false
	ambiguous := false

	for _, other := range p.LegalMoves() {
		if other.To != m.To || other.From == m.From || other.Piece != m.Piece {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}
	if !sameFile {
		return string('a' + byte(m.From.File()))
	}
	if !sameRank {
		return string('1' + byte(m.From.Rank()))
	}
	return m.From.String()
}

// SANLine renders a sequence of moves starting from the current position.
// The position is unchanged on return.
func (p *Position) SANLine(moves []Move) []string {
	line := make([]string, len(moves))
	for i, m := range moves {
		line[i] = p.SAN(m)
		p.MakeMove(m)
	}
	for range moves {
		p.UndoMove()
	}
	return line
}
