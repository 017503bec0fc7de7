package tui

import "github.com/gdamore/tcell/v2"

func commandForKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		return CmdPageDown
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		return CmdPageUp
	case tcell.KeyHome:
		return CmdFirst
	case tcell.KeyEnd:
		return CmdLast
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		return CmdConfirm
	case tcell.KeyESC, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			return CmdDown
		case 'k':
			return CmdUp
		case '}':
			return CmdPageDown
		case '{':
			return CmdPageUp
		case 'g':
			return CmdFirst
		case 'G':
			return CmdLast
		case 'q':
			return CmdQuit
		}
	}
	return CmdNone
}
