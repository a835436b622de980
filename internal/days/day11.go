package days

import (
	"fmt"
	"strings"

	"aoc2025/internal/puzzle"
)

func day11() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   11,
		Title: "Reactor",
		Part1: day11Part1,
		Part2: day11Part2,
	}
}

func parseDeviceGraph(input string) (map[string][]string, error) {
	graph := make(map[string][]string)
	for i, line := range trimmedLines(input) {
		name, outs, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed device %q", i+1, line)
		}
		name = strings.TrimSpace(name)
		outputs := strings.Fields(outs)
		graph[name] = append(graph[name], outputs...)
		for _, out := range outputs {
			if _, exists := graph[out]; !exists {
				graph[out] = nil
			}
		}
	}
	return graph, nil
}

// day11Part1 counts distinct acyclic paths from "you" to "out".
func day11Part1(input string) (any, error) {
	graph, err := parseDeviceGraph(input)
	if err != nil {
		return nil, err
	}
	visited := make(map[string]bool)
	return countPaths(graph, "you", "out", visited), nil
}

func countPaths(graph map[string][]string, node, target string, visited map[string]bool) int {
	if node == target {
		return 1
	}
	visited[node] = true
	count := 0
	for _, next := range graph[node] {
		if !visited[next] {
			count += countPaths(graph, next, target, visited)
		}
	}
	visited[node] = false
	return count
}

const (
	sawDAC = 1 << iota
	sawFFT
)

type day11MemoKey struct {
	node string
	seen uint8
}

// day11Part2 counts paths from "svr" to "out" that pass through both "dac"
// and "fft". Progress through the required devices is tracked as a bitmask
// and memoized alongside the node.
func day11Part2(input string) (any, error) {
	graph, err := parseDeviceGraph(input)
	if err != nil {
		return nil, err
	}
	visited := make(map[string]bool)
	memo := make(map[day11MemoKey]int)
	return countPathsThrough(graph, "svr", 0, visited, memo), nil
}

func countPathsThrough(graph map[string][]string, node string, seen uint8, visited map[string]bool, memo map[day11MemoKey]int) int {
	switch node {
	case "dac":
		seen |= sawDAC
	case "fft":
		seen |= sawFFT
	}
	if node == "out" {
		if seen == sawDAC|sawFFT {
			return 1
		}
		return 0
	}
	key := day11MemoKey{node: node, seen: seen}
	if cached, ok := memo[key]; ok {
		return cached
	}
	visited[node] = true
	count := 0
	for _, next := range graph[node] {
		if !visited[next] {
			count += countPathsThrough(graph, next, seen, visited, memo)
		}
	}
	visited[node] = false
	memo[key] = count
	return count
}
