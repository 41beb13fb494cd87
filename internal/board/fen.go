package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a fresh Position.
func ParseFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.LoadFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFEN replaces the position with the one described by fen, discarding any
// history. On error the position is left in the partially loaded state;
// callers must treat a non-nil error as an invalid position rather than
// assume the previous state survived.
func (p *Position) LoadFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	p.Clear()

	if err := p.parsePlacement(parts[0]); err != nil {
		return err
	}

	switch parts[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := p.parseCastling(parts[2]); err != nil {
		return err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		p.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		p.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		p.FullMoveNumber = fmn
	}

	return p.validate()
}

// parsePlacement parses the piece placement field, rank 8 down to rank 1.
func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			sq := NewSquare(file, rank)
			p.Board[sq] = piece
			if piece.Type() == King {
				p.Kings[piece.Color()] = sq
			}
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastling parses the castling availability field.
func (p *Position) parseCastling(castling string) error {
	if castling == "-" {
		p.Castling = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			p.Castling |= WhiteKingSideCastle
		case 'Q':
			p.Castling |= WhiteQueenSideCastle
		case 'k':
			p.Castling |= BlackKingSideCastle
		case 'q':
			p.Castling |= BlackQueenSideCastle
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}

	return nil
}

// validate rejects loaded boards the engine cannot operate on. The king
// location cache requires exactly one king per color, and pawns on the back
// ranks would generate moves off the padded board.
func (p *Position) validate() error {
	var kings [2]int
	for sq := A1; sq <= H8; sq++ {
		if !sq.IsValid() {
			sq += 7
			continue
		}
		pc := p.Board[sq]
		if pc == NoPiece {
			continue
		}
		if pc.Type() == King {
			kings[pc.Color()]++
		}
		if pc.Type() == Pawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return fmt.Errorf("pawn on back rank at %s", sq)
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("white must have exactly one king, got %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black must have exactly one king, got %d", kings[Black])
	}
	return nil
}

// FEN returns the FEN representation of the position. For a position loaded
// from a well-formed six-field FEN string this reproduces the input
// byte-for-byte.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Board[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

// repetitionKey is the normalized position string used for repetition
// detection: the first four FEN fields, excluding the move counters.
func (p *Position) repetitionKey() string {
	fen := p.FEN()
	end := len(fen)
	for i, spaces := 0, 0; i < len(fen); i++ {
		if fen[i] == ' ' {
			spaces++
			if spaces == 4 {
				end = i
				break
			}
		}
	}
	return fen[:end]
}
