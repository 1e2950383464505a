package ui

import (
	"github.com/charmbracelet/bubbles/list"
)

// channelItem wraps a column name for use in a list
type channelItem string

// FilterValue implements list.Item
func (c channelItem) FilterValue() string {
	return string(c)
}

// Title implements list.DefaultItem
func (c channelItem) Title() string {
	return string(c)
}

// Description implements list.DefaultItem
func (c channelItem) Description() string {
	return "measurement channel"
}

// createChannelList creates a list.Model from the table's column names
func createChannelList(columns []string, width, height int) list.Model {
	if width < 20 {
		width = 20
	}
	if height < 5 {
		height = 5
	}
	items := make([]list.Item, len(columns))
	for i, col := range columns {
		items[i] = channelItem(col)
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Channels"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return l
}
