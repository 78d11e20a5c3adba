package game

import "github.com/minaorangina/hanabi/protocol"

// Status reports the state of the game as the current player sees it
func (h *Hanabi) Status() protocol.Report {
	return protocol.Report{
		Kind:        protocol.Status,
		Turn:        h.Turn,
		Score:       h.Score,
		Finished:    h.Over(),
		CurrentHand: h.CurrentHand().Cards(),
		NextHand:    h.NextHand().Cards(),
		Table:       h.Table.Counts(),
	}
}

func (h *Hanabi) buildSummary() protocol.Report {
	return protocol.Report{
		Kind:  protocol.Summary,
		Turn:  h.Turn,
		Cards: h.Table.Total(),
		Table: h.Table.Counts(),
	}
}
