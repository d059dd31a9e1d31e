/*
Package trie provides a compressed prefix tree for prefix completion over a
fixed word table. Edges are ranges into the table, so the tree never copies
word text. A Loader reads and normalises word lists for building.
*/
package trie
