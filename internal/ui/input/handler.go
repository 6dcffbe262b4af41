package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

type ActionKind int

const (
	ActionReveal ActionKind = iota
	ActionFlag
	ActionRestart
	ActionQuit
)

// Action is one input gesture translated into a board command.
// Cell is only set for reveal and flag.
type Action struct {
	Kind ActionKind
	Cell core.Coordinate
}

type Handler struct {
	// Mouse state
	mouseX, mouseY int

	// Board geometry
	tileSize     int
	boardOffsetX int
	boardOffsetY int
	boardWidth   int
	boardHeight  int

	actions []Action
}

func NewHandler(tileSize, boardWidth, boardHeight int) *Handler {
	return &Handler{
		tileSize:    tileSize,
		boardWidth:  boardWidth,
		boardHeight: boardHeight,
		actions:     make([]Action, 0, 4),
	}
}

// Update polls ebiten for this frame's input. Call once per tick, then
// drain the result with Actions.
func (h *Handler) Update() {
	h.actions = h.actions[:0]
	h.mouseX, h.mouseY = ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.HandleClick(ebiten.MouseButtonLeft, h.mouseX, h.mouseY)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		h.HandleClick(ebiten.MouseButtonRight, h.mouseX, h.mouseY)
	}

	h.handleKeyboard()
}

// HandleClick queues a reveal for the primary button or a flag toggle for
// the secondary one. Clicks outside the board are dropped.
func (h *Handler) HandleClick(button ebiten.MouseButton, x, y int) {
	cell, ok := h.screenToTile(x, y)
	if !ok {
		return
	}

	switch button {
	case ebiten.MouseButtonLeft:
		h.actions = append(h.actions, Action{Kind: ActionReveal, Cell: cell})
	case ebiten.MouseButtonRight:
		h.actions = append(h.actions, Action{Kind: ActionFlag, Cell: cell})
	}
}

func (h *Handler) handleKeyboard() {
	// R or Enter starts a new board
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		h.actions = append(h.actions, Action{Kind: ActionRestart})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.actions = append(h.actions, Action{Kind: ActionQuit})
	}
}

func (h *Handler) screenToTile(x, y int) (core.Coordinate, bool) {
	cell := core.FromPixel(x, y, h.tileSize, h.boardOffsetX, h.boardOffsetY)
	return cell, cell.IsValid(h.boardWidth, h.boardHeight)
}

func (h *Handler) SetBoardOffset(x, y int) {
	h.boardOffsetX = x
	h.boardOffsetY = y
}

// Actions returns the actions gathered by the last Update
func (h *Handler) Actions() []Action {
	return h.actions
}

// GetHoveredTile returns the cell under the cursor, if any
func (h *Handler) GetHoveredTile() (core.Coordinate, bool) {
	return h.screenToTile(h.mouseX, h.mouseY)
}
