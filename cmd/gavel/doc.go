// Command gavel reduces legislative vote exports into the published JSON
// document tree and provides inspection commands for the derived graph.
package main
