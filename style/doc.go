// Package style renders view trees for the terminal.
//
// A Sheet maps class names to Rules, which become lipgloss styles. Sheets
// can be loaded from YAML files of the form:
//
//	classes:
//	  the-parent:
//	    border: rounded
//	    padding: [0, 1]
//	  child-1:
//	    foreground: "#58a6ff"
//	    bold: true
package style
