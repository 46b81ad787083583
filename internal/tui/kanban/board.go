package kanban

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/agenda"
	"taskboard/internal/kanban/filter"
	"taskboard/internal/kanban/models"
	"taskboard/internal/kanban/move"
	"taskboard/internal/kanban/operations"
	"taskboard/internal/logs"
	"taskboard/internal/tui/shared"
	"taskboard/internal/tui/theme"
	"taskboard/internal/users"
)

type boardMode int

const (
	boardModeNormal boardMode = iota
	boardModeMove
	boardModeConfirmDelete
	boardModeConfirmDeleteColumn
	boardModeForm
	boardModeColumnInput
	boardModeDueFilter
	boardModeFilter
	boardModeActivity
)

// dragState tracks a picked-up task and where it would land. index is a
// slot in the target column's visible list with the dragged task left out.
type dragState struct {
	taskID string
	source move.Location
	col    int
	index  int
}

type BoardModel struct {
	ctrl                   *operations.Controller
	resolver               *move.Resolver
	users                  *users.Directory
	intakeColumnID         string
	filter                 filter.State
	now                    func() time.Time
	selectedCol            int
	selectedCard           int
	mode                   boardMode
	width                  int
	height                 int
	err                    error
	message                string
	filterInput            textinput.Model
	textInput              *shared.TextInputModel
	form                   *TaskFormModel
	drag                   *dragState
	columnScrollOffsets    []int // scroll position (card index) for each column
	columnHorizontalOffset int   // first visible column index
}

func NewBoardModel(ctrl *operations.Controller, dir *users.Directory, intakeColumnID string) BoardModel {
	if intakeColumnID == "" {
		intakeColumnID = operations.IntakeColumnID
	}
	return BoardModel{
		ctrl:                ctrl,
		resolver:            move.NewResolver(ctrl),
		users:               dir,
		intakeColumnID:      intakeColumnID,
		now:                 time.Now,
		mode:                boardModeNormal,
		columnScrollOffsets: make([]int, ctrl.ColumnCount()),
	}
}

// SetSize updates the view dimensions
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.adjustScrollPosition()
	m.adjustHorizontalScrollPosition()
}

// SetDueFilter shows only tasks due on date
func (m *BoardModel) SetDueFilter(date time.Time) {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	m.filter.DueDate = &d
	m.message = "Showing tasks due " + d.Format(models.DateLayout)
	m.filterChanged()
}

// Filter returns the active filters
func (m BoardModel) Filter() filter.State {
	return m.filter
}

// IsModal returns true if the board is capturing all keys (forms, inputs, drags)
func (m BoardModel) IsModal() bool {
	return m.mode != boardModeNormal
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles board events as a child view
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case TaskFormResultMsg:
		return m.handleFormResult(msg)

	case shared.TextInputResultMsg:
		return m.handleTextInputResult(msg)

	case tea.KeyMsg:
		switch m.mode {
		case boardModeNormal:
			return m.updateNormal(msg)
		case boardModeMove:
			return m.updateMove(msg)
		case boardModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case boardModeConfirmDeleteColumn:
			return m.updateConfirmDeleteColumn(msg)
		case boardModeForm:
			return m, m.form.Update(msg)
		case boardModeColumnInput, boardModeDueFilter:
			return m, m.textInput.Update(msg)
		case boardModeFilter:
			return m.updateFilter(msg)
		case boardModeActivity:
			switch msg.String() {
			case "esc", "i", "q", "enter":
				m.mode = boardModeNormal
			}
			return m, nil
		}
	}

	return m, nil
}

func (m BoardModel) updateNormal(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	m.message = ""
	m.err = nil

	switch msg.String() {
	case "esc":
		if m.filter.IsActive() {
			m.clearFilters()
		}

	case "h", "left":
		if m.selectedCol > 0 {
			m.selectedCol--
			m.clampCursor()
			m.adjustScrollPosition()
			m.adjustHorizontalScrollPosition()
		}

	case "l", "right":
		if m.selectedCol < m.ctrl.ColumnCount()-1 {
			m.selectedCol++
			m.clampCursor()
			m.adjustScrollPosition()
			m.adjustHorizontalScrollPosition()
		}

	case "j", "down":
		if m.selectedCard < len(m.visibleTasks(m.selectedCol))-1 {
			m.selectedCard++
			m.adjustScrollPosition()
		}

	case "k", "up":
		if m.selectedCard > 0 {
			m.selectedCard--
			m.adjustScrollPosition()
		}

	case "n":
		m.form = NewTaskForm(m.users)
		m.form.Width = m.modalWidth()
		m.mode = boardModeForm
		return m, textinput.Blink

	case "e", "enter":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.form = EditTaskForm(task, m.users)
		m.form.Width = m.modalWidth()
		m.mode = boardModeForm
		return m, textinput.Blink

	case "d":
		if _, ok := m.selectedTask(); ok {
			m.mode = boardModeConfirmDelete
		}

	case "i":
		if _, ok := m.selectedTask(); ok {
			m.mode = boardModeActivity
		}

	case "c":
		m.textInput = shared.NewTextInput("Column title", "e.g. Review", func(s string) error {
			_, err := operations.ValidateColumnName(s)
			return err
		})
		m.textInput.Width = m.modalWidth()
		m.mode = boardModeColumnInput
		return m, textinput.Blink

	case "X":
		col, ok := m.currentColumn()
		if !ok {
			return m, nil
		}
		if !m.ctrl.CanDeleteColumn(col.ID) {
			m.err = errors.New("cannot delete the only column")
			return m, nil
		}
		m.mode = boardModeConfirmDeleteColumn

	case "m", " ":
		return m.startDrag(), nil

	case "/":
		ti := textinput.New()
		ti.Placeholder = "title contains..."
		ti.CharLimit = 100
		ti.Width = 40
		ti.SetValue(m.filter.Query)
		ti.Focus()
		m.filterInput = ti
		m.mode = boardModeFilter
		return m, textinput.Blink

	case "L":
		m.filter.Label = nextLabel(m.filter.Label)
		m.filterChanged()

	case "A":
		m.filter.AssigneeID = m.nextAssignee(m.filter.AssigneeID)
		m.filterChanged()

	case "D":
		m.textInput = shared.NewDateInput("Due on")
		m.textInput.SetValue(models.FormatDate(m.filter.DueDate))
		m.textInput.Width = m.modalWidth()
		m.mode = boardModeDueFilter
		return m, textinput.Blink

	case "C":
		m.clearFilters()
	}

	return m, nil
}

func (m BoardModel) startDrag() BoardModel {
	task, ok := m.selectedTask()
	if !ok {
		return m
	}
	col, _ := m.currentColumn()
	m.drag = &dragState{
		taskID: task.ID,
		source: move.Location{ColumnID: col.ID, Index: m.selectedCard},
		col:    m.selectedCol,
		index:  m.selectedCard,
	}
	m.mode = boardModeMove
	return m
}

func (m BoardModel) updateMove(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	d := m.drag
	switch msg.String() {
	case "esc", "q":
		m.drag = nil
		m.mode = boardModeNormal

	case "h", "left":
		if d.col > 0 {
			d.col--
			d.index = m.dropSlots(d.col)
			m.adjustHorizontalScrollPosition()
		}

	case "l", "right":
		if d.col < m.ctrl.ColumnCount()-1 {
			d.col++
			d.index = m.dropSlots(d.col)
			m.adjustHorizontalScrollPosition()
		}

	case "j", "down":
		if d.index < m.dropSlots(d.col) {
			d.index++
		}

	case "k", "up":
		if d.index > 0 {
			d.index--
		}

	case "enter", "m", " ":
		return m.drop(), nil
	}

	return m, nil
}

// drop hands the drag to the resolver and follows the task to its new slot
func (m BoardModel) drop() BoardModel {
	d := m.drag
	m.drag = nil
	m.mode = boardModeNormal

	dest := m.ctrl.Board().Columns[d.col]
	result := move.DragResult{
		TaskID:      d.taskID,
		Source:      d.source,
		Destination: &move.Location{ColumnID: dest.ID, Index: d.index},
	}
	if err := m.resolver.Apply(result, m.filter); err != nil {
		m.err = err
		logs.Logger.Warnf("drop of %s failed: %v", d.taskID, err)
		return m
	}

	m.selectedCol = d.col
	m.selectTask(d.taskID)
	m.adjustScrollPosition()
	m.adjustHorizontalScrollPosition()
	if d.source.ColumnID != dest.ID {
		m.message = "Moved to " + dest.Title
	}
	return m
}

// dropSlots returns the largest drop index for a column: the number of
// visible tasks not counting the one being dragged.
func (m BoardModel) dropSlots(colIdx int) int {
	n := 0
	for _, t := range m.visibleTasks(colIdx) {
		if m.drag == nil || t.ID != m.drag.taskID {
			n++
		}
	}
	return n
}

func (m BoardModel) updateConfirmDelete(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		if task, ok := m.selectedTask(); ok {
			m.ctrl.DeleteTask(task.ID)
			m.message = "Task deleted"
			m.clampCursor()
			m.adjustScrollPosition()
		}
		m.mode = boardModeNormal

	case "n", "esc":
		m.mode = boardModeNormal
	}

	return m, nil
}

func (m BoardModel) updateConfirmDeleteColumn(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		if col, ok := m.currentColumn(); ok {
			m.ctrl.DeleteColumn(col.ID)
			m.message = fmt.Sprintf("Column %q deleted", col.Title)
			m.syncColumns()
			if m.selectedCol >= m.ctrl.ColumnCount() {
				m.selectedCol = max(0, m.ctrl.ColumnCount()-1)
			}
			m.clampCursor()
			m.adjustHorizontalScrollPosition()
		}
		m.mode = boardModeNormal

	case "n", "esc":
		m.mode = boardModeNormal
	}

	return m, nil
}

func (m BoardModel) updateFilter(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter.Query = m.filterInput.Value()
		m.mode = boardModeNormal
		m.filterChanged()
		return m, nil

	case "esc":
		m.filter.Query = ""
		m.mode = boardModeNormal
		m.filterChanged()
		return m, nil

	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		// Live recompute
		m.filter.Query = m.filterInput.Value()
		m.filterChanged()
		return m, cmd
	}
}

func (m BoardModel) handleFormResult(msg TaskFormResultMsg) (BoardModel, tea.Cmd) {
	if msg.Cancelled {
		m.form = nil
		m.mode = boardModeNormal
		return m, nil
	}

	var err error
	taskID := msg.TaskID
	if taskID == "" {
		taskID, err = m.ctrl.AddTask(m.intakeColumnID, msg.Title, msg.Description, msg.Label, msg.AssigneeID, msg.DueDate)
	} else {
		err = m.ctrl.EditTask(taskID, msg.Title, msg.Description, msg.Label, msg.AssigneeID, msg.DueDate)
	}

	if operations.IsValidation(err) && m.form != nil {
		m.form.SetError(err)
		return m, nil
	}

	m.form = nil
	m.mode = boardModeNormal
	if err != nil {
		m.err = err
		return m, nil
	}

	if msg.TaskID == "" {
		m.message = "Task created"
		if idx := m.ctrl.Board().GetColumnIndex(m.intakeColumnID); idx >= 0 {
			m.selectedCol = idx
		}
	} else {
		m.message = "Task updated"
	}
	m.selectTask(taskID)
	m.adjustScrollPosition()
	m.adjustHorizontalScrollPosition()
	return m, nil
}

func (m BoardModel) handleTextInputResult(msg shared.TextInputResultMsg) (BoardModel, tea.Cmd) {
	mode := m.mode
	m.textInput = nil
	m.mode = boardModeNormal
	if msg.Cancelled {
		return m, nil
	}

	switch mode {
	case boardModeColumnInput:
		id, err := m.ctrl.AddColumn(msg.Value)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.syncColumns()
		m.selectedCol = m.ctrl.Board().GetColumnIndex(id)
		m.clampCursor()
		m.adjustHorizontalScrollPosition()
		m.message = "Column added"

	case boardModeDueFilter:
		d, err := models.ParseDate(msg.Value)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.filter.DueDate = d
		m.filterChanged()
	}

	return m, nil
}

func nextLabel(current *models.Label) *models.Label {
	if current == nil {
		return models.LabelPtr(models.Labels[0])
	}
	for i, l := range models.Labels {
		if l == *current && i+1 < len(models.Labels) {
			return models.LabelPtr(models.Labels[i+1])
		}
	}
	return nil
}

func (m BoardModel) nextAssignee(current string) string {
	all := m.users.All()
	if current == "" && len(all) > 0 {
		return all[0].ID
	}
	for i, u := range all {
		if u.ID == current && i+1 < len(all) {
			return all[i+1].ID
		}
	}
	return ""
}

func (m *BoardModel) clearFilters() {
	m.filter = filter.State{}
	m.filterChanged()
}

// filterChanged keeps the cursor on a visible task after the filters change
func (m *BoardModel) filterChanged() {
	m.clampCursor()
	for i := range m.columnScrollOffsets {
		m.columnScrollOffsets[i] = 0
	}
	m.adjustScrollPosition()
}

func (m BoardModel) View() string {
	switch m.mode {
	case boardModeForm:
		if m.form != nil {
			return shared.CenterBox(m.form.View(), m.width, m.height)
		}
	case boardModeColumnInput, boardModeDueFilter:
		if m.textInput != nil {
			return shared.CenterBox(m.textInput.View(), m.width, m.height)
		}
	case boardModeActivity:
		if task, ok := m.selectedTask(); ok {
			return shared.CenterBox(renderActivity(task, m.users, m.modalWidth()), m.width, m.height)
		}
	}

	st := currentStyles()
	board := m.ctrl.Board()

	var s strings.Builder

	// Title
	title := "Board"
	if board.Name != "" {
		title = "Board: " + board.Name
	}
	s.WriteString(st.title.Render(title))
	if agenda.HasDueOrOverdue(board, m.now()) {
		s.WriteString("  " + theme.Warn.Render("You have tasks due today or overdue!"))
	}
	s.WriteString("\n")

	// Filter bar
	if m.mode == boardModeFilter {
		s.WriteString("  / " + m.filterInput.View())
	} else if m.filter.IsActive() {
		s.WriteString("  " + st.filterIndicator.Render("Filter: "+m.filter.DescribeWith(m.users.Name)))
	}
	s.WriteString("\n")

	fixedHeight := m.columnHeight()

	startCol, endCol := m.calculateVisibleColumns()
	views := []string{}

	if startCol > 0 {
		views = append(views, m.renderScrollIndicator("◀", fixedHeight))
	} else {
		views = append(views, m.renderScrollIndicator(" ", fixedHeight))
	}

	for i := startCol; i < endCol; i++ {
		views = append(views, m.renderColumn(st, i, board.Columns[i], fixedHeight))
	}

	if endCol < len(board.Columns) {
		views = append(views, m.renderScrollIndicator("▶", fixedHeight))
	} else {
		views = append(views, m.renderScrollIndicator(" ", fixedHeight))
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	s.WriteString(lipgloss.Place(m.width, 0, lipgloss.Center, lipgloss.Top, columns))
	s.WriteString("\n")

	// Status message or error
	if m.err != nil {
		s.WriteString(theme.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	} else if m.message != "" {
		s.WriteString(theme.Ok.Render(m.message))
		s.WriteString("\n")
	}

	// Mode-specific help
	switch m.mode {
	case boardModeMove:
		s.WriteString(theme.HelpHint.Render("h/l: column • j/k: position • enter: drop • esc: cancel"))
	case boardModeConfirmDelete:
		s.WriteString(theme.Warn.Render("Delete this task? (y/n)"))
	case boardModeConfirmDeleteColumn:
		s.WriteString(theme.Warn.Render("Delete this column and all its tasks? (y/n)"))
	case boardModeFilter:
		s.WriteString(theme.HelpHint.Render("type to filter • enter: keep • esc: clear"))
	default:
		s.WriteString(theme.HelpHint.Render(
			"hjkl: navigate • n: new • e: edit • d: delete • m: move • i: activity • c/X: add/delete column • /: search • L/A/D: label/assignee/due • C: clear • w: week • ?: help"))
	}

	return s.String()
}

// columnEntry is one rendered row of a column: a task card or the drop marker
type columnEntry struct {
	task   models.Task
	marker bool
	index  int // visible index of the task, -1 for the marker
}

// columnEntries lays out a column. While dragging, the target column shows
// the dragged task as a marker at the drop slot instead of in its place.
func (m BoardModel) columnEntries(colIdx int) []columnEntry {
	tasks := m.visibleTasks(colIdx)
	entries := make([]columnEntry, 0, len(tasks)+1)

	if m.mode != boardModeMove || m.drag == nil || m.drag.col != colIdx {
		for i, t := range tasks {
			entries = append(entries, columnEntry{task: t, index: i})
		}
		return entries
	}

	var dragged models.Task
	slot := 0
	for i, t := range tasks {
		if t.ID == m.drag.taskID {
			dragged = t
			continue
		}
		if slot == m.drag.index {
			entries = append(entries, columnEntry{marker: true, index: -1})
		}
		entries = append(entries, columnEntry{task: t, index: i})
		slot++
	}
	if slot <= m.drag.index {
		entries = append(entries, columnEntry{marker: true, index: -1})
	}

	if dragged.ID == "" {
		dragged, _ = m.ctrl.Task(m.drag.taskID)
	}
	for i := range entries {
		if entries[i].marker {
			entries[i].task = dragged
		}
	}
	return entries
}

func (m BoardModel) renderColumn(st boardStyles, index int, col models.Column, fixedHeight int) string {
	var s strings.Builder

	titleStyle := st.columnTitle
	style := st.column
	if index == m.selectedCol {
		titleStyle = st.selectedColumnTitle
		style = st.selectedColumn
	}

	visibleCount := len(m.visibleTasks(index))
	var header string
	if m.filter.IsActive() {
		header = fmt.Sprintf("%s (%d/%d)", col.Title, visibleCount, len(col.TaskIDs))
	} else {
		header = fmt.Sprintf("%s (%d)", col.Title, len(col.TaskIDs))
	}
	s.WriteString(titleStyle.Width(columnWidth - 2*columnPaddingHorizontal).Render(header))
	s.WriteString("\n\n")

	entries := m.columnEntries(index)
	if len(entries) == 0 {
		s.WriteString(st.cardPreview.Render("(empty)"))
		return style.Height(fixedHeight).Render(s.String())
	}

	scrollOffset := 0
	if index < len(m.columnScrollOffsets) && m.mode != boardModeMove {
		scrollOffset = min(m.columnScrollOffsets[index], len(entries)-1)
	}

	if scrollOffset > 0 {
		s.WriteString(st.scrollIndicator.Render(fmt.Sprintf("▲ +%d above", scrollOffset)))
	}
	s.WriteString("\n")

	available := fixedHeight - 6
	used := 0
	rendered := 0
	for i := scrollOffset; i < len(entries); i++ {
		view := m.renderEntry(st, index, entries[i])
		h := lipgloss.Height(view)
		if rendered > 0 && used+h > available {
			break
		}
		s.WriteString(view)
		s.WriteString("\n")
		used += h
		rendered++
	}

	if below := len(entries) - scrollOffset - rendered; below > 0 {
		s.WriteString(st.scrollIndicator.Render(fmt.Sprintf("▼ +%d below", below)))
	}

	return style.Height(fixedHeight).Render(s.String())
}

func (m BoardModel) renderEntry(st boardStyles, colIndex int, e columnEntry) string {
	if e.marker {
		return st.moveCard.Render("▶ " + shared.Truncate(e.task.Title, m.cardTextWidth()-2))
	}

	style := st.card
	switch {
	case m.mode == boardModeMove && m.drag != nil && e.task.ID == m.drag.taskID:
		style = st.moveCard
	case m.mode != boardModeMove && colIndex == m.selectedCol && e.index == m.selectedCard:
		style = st.selectedCard
	}
	return style.Render(m.cardContent(st, e.task))
}

func (m BoardModel) cardTextWidth() int {
	return columnWidth - 2*columnPaddingHorizontal - cardBorderWidth - 2*cardPaddingHorizontal
}

func (m BoardModel) cardContent(st boardStyles, task models.Task) string {
	width := m.cardTextWidth()

	lines := []string{st.cardTitle.Render(shared.Truncate(task.Title, width))}

	if desc := shared.SingleLine(task.Description); desc != "" {
		lines = append(lines, st.cardPreview.Render(shared.Truncate(desc, width)))
	}

	var meta []string
	if task.Label != nil {
		meta = append(meta, theme.Label(task.Label))
	}
	if task.AssigneeID != "" {
		meta = append(meta, theme.Assignee.Render("@"+m.users.Name(task.AssigneeID)))
	}
	if len(meta) > 0 {
		lines = append(lines, strings.Join(meta, " "))
	}

	if task.DueDate != nil {
		dateStr, color := formatDueDate(task.DueDate, m.now())
		lines = append(lines, lipgloss.NewStyle().Foreground(color).Bold(true).Render(dateStr))
	}

	return strings.Join(lines, "\n")
}

// formatDueDate renders a due date with the days remaining, colored by urgency
func formatDueDate(date *time.Time, now time.Time) (string, lipgloss.Color) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)

	daysUntil := int(target.Sub(today).Hours() / 24)

	var rel string
	switch {
	case daysUntil == 0:
		rel = "today"
	case daysUntil < 0:
		rel = fmt.Sprintf("%dd overdue", -daysUntil)
	default:
		rel = fmt.Sprintf("in %dd", daysUntil)
	}
	dateStr := fmt.Sprintf("due %s %s (%s)", date.Format("Jan 2"), strings.ToLower(date.Weekday().String()[:3]), rel)

	if daysUntil > 7 {
		return dateStr, theme.Current.Success
	} else if daysUntil > 0 {
		return dateStr, theme.Current.Warning
	}
	return dateStr, theme.Current.Danger
}

// visibleTasks returns the tasks shown for a column under the active filters
func (m BoardModel) visibleTasks(colIdx int) []models.Task {
	board := m.ctrl.Board()
	if colIdx < 0 || colIdx >= len(board.Columns) {
		return nil
	}
	return filter.Apply(board.Tasks, board.Columns[colIdx].TaskIDs, m.filter)
}

func (m BoardModel) currentColumn() (models.Column, bool) {
	board := m.ctrl.Board()
	if m.selectedCol < 0 || m.selectedCol >= len(board.Columns) {
		return models.Column{}, false
	}
	return board.Columns[m.selectedCol], true
}

func (m BoardModel) selectedTask() (models.Task, bool) {
	tasks := m.visibleTasks(m.selectedCol)
	if m.selectedCard < 0 || m.selectedCard >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.selectedCard], true
}

// selectTask moves the cursor onto taskID within the selected column
func (m *BoardModel) selectTask(taskID string) {
	for i, t := range m.visibleTasks(m.selectedCol) {
		if t.ID == taskID {
			m.selectedCard = i
			return
		}
	}
	m.clampCursor()
}

func (m *BoardModel) clampCursor() {
	visibleCount := len(m.visibleTasks(m.selectedCol))
	if m.selectedCard >= visibleCount {
		m.selectedCard = max(0, visibleCount-1)
	}
	if m.selectedCard < 0 {
		m.selectedCard = 0
	}
}

// syncColumns resizes per-column state after columns are added or removed
func (m *BoardModel) syncColumns() {
	n := m.ctrl.ColumnCount()
	if len(m.columnScrollOffsets) != n {
		offsets := make([]int, n)
		copy(offsets, m.columnScrollOffsets)
		m.columnScrollOffsets = offsets
	}
}

func (m BoardModel) modalWidth() int {
	if m.width <= 0 {
		return 60
	}
	return min(70, max(40, m.width-10))
}

func (m BoardModel) columnHeight() int {
	boardHeaderLines := 2
	statusLines := 3
	marginLines := 2
	h := m.height - boardHeaderLines - statusLines - marginLines
	if h < 10 {
		h = 10
	}
	return h
}

// adjustScrollPosition ensures the selected card is visible by adjusting scroll offset
func (m *BoardModel) adjustScrollPosition() {
	m.syncColumns()
	if m.selectedCol >= len(m.columnScrollOffsets) {
		return
	}

	tasks := m.visibleTasks(m.selectedCol)
	if len(tasks) == 0 {
		m.columnScrollOffsets[m.selectedCol] = 0
		return
	}

	st := currentStyles()
	available := m.columnHeight() - 6
	offset := m.columnScrollOffsets[m.selectedCol]

	if m.selectedCard < offset {
		offset = m.selectedCard
	} else {
		fits := 0
		used := 0
		for i := offset; i < len(tasks); i++ {
			h := lipgloss.Height(st.card.Render(m.cardContent(st, tasks[i])))
			if fits > 0 && used+h > available {
				break
			}
			used += h
			fits++
		}
		if fits < 1 {
			fits = 1
		}
		if m.selectedCard >= offset+fits {
			offset = m.selectedCard - fits + 1
		}
	}

	m.columnScrollOffsets[m.selectedCol] = max(0, min(offset, len(tasks)-1))
}

// calculateVisibleColumns determines which columns fit in terminal width
func (m *BoardModel) calculateVisibleColumns() (startCol, endCol int) {
	count := m.ctrl.ColumnCount()
	startCol = min(m.columnHorizontalOffset, max(0, count-1))

	indicatorWidth := 3
	visibleCount := (m.width - 2*indicatorWidth) / columnTotalWidth
	if visibleCount < 1 {
		visibleCount = 1
	}

	endCol = min(startCol+visibleCount, count)
	return startCol, endCol
}

// renderScrollIndicator renders ◀ and ▶ indicators for horizontal scrolling
func (m *BoardModel) renderScrollIndicator(symbol string, height int) string {
	indicator := theme.Warn.Render(symbol)
	return lipgloss.NewStyle().
		Width(3).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(indicator)
}

// adjustHorizontalScrollPosition ensures the selected column is visible
func (m *BoardModel) adjustHorizontalScrollPosition() {
	col := m.selectedCol
	if m.mode == boardModeMove && m.drag != nil {
		col = m.drag.col
	}

	startCol, endCol := m.calculateVisibleColumns()
	if col < startCol {
		m.columnHorizontalOffset = col
		return
	}
	if col >= endCol {
		m.columnHorizontalOffset = max(0, col-(endCol-startCol)+1)
	}
}
