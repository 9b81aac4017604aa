package main

import (
	"fmt"

	"idea-forge-be/pkg/propagation"

	"github.com/fatih/color"
)

// Offline walkthrough of the propagation store: simulates two edit turns and
// prints each section the way the client would paint it, so the highlight
// aging rules can be eyeballed without a running server.
func main() {
	fmt.Println("=== Propagation Highlight Simulation ===")

	state := propagation.NewState()

	objective := "Build a meal-planning app with weekly shopping lists and a recipe importer."
	requirements := "RF-001 The user can plan meals per week.\nRF-002 The system generates a shopping list.\nRF-003 The system imports recipes from URLs."

	// Turn 1: the user sharpens the objective; the edit propagates a new
	// functional requirement into the action plan.
	fmt.Println("\n--- Turn 1: edit ideation/objective ---")
	objective += " Target audience: busy families."
	state.IncrementGeneration()
	state.AddHighlight(propagation.StageIdeation, "objective", []string{"Target audience: busy families."})

	requirements += "\nRF-004 The system suggests meals suited to family schedules."
	state.AddHighlight(propagation.StageActionPlan, "functional_requirements", []string{"RF-004 The system suggests meals suited to family schedules."})
	state.AddModuleUpdate(propagation.StageActionPlan)

	printSection(state, propagation.StageIdeation, "objective", objective)
	printSection(state, propagation.StageActionPlan, "functional_requirements", requirements)
	printBadges(state)

	// Turn 2: a second edit ages the first turn's highlights to yellow.
	fmt.Println("\n--- Turn 2: edit action_plan/functional_requirements ---")
	requirements += "\nRF-005 The user can exclude allergens."
	state.IncrementGeneration()
	state.AddHighlight(propagation.StageActionPlan, "functional_requirements", []string{"RF-005 The user can exclude allergens."})

	printSection(state, propagation.StageIdeation, "objective", objective)
	printSection(state, propagation.StageActionPlan, "functional_requirements", requirements)
	printBadges(state)

	// Visiting the stage clears its unread badge.
	fmt.Println("\n--- Visit action plan stage ---")
	state.ClearModuleUpdate(propagation.StageActionPlan)
	printBadges(state)
}

func printSection(state *propagation.State, stage propagation.Stage, section, text string) {
	fmt.Printf("\n[%s / %s]\n", stage.DisplayName(), section)
	for _, frag := range state.Fragments(stage, section, text) {
		switch frag.Color {
		case propagation.ColorGreen:
			color.New(color.FgGreen).Print(frag.Text)
		case propagation.ColorYellow:
			color.New(color.FgYellow).Print(frag.Text)
		default:
			fmt.Print(frag.Text)
		}
	}
	fmt.Println()
}

func printBadges(state *propagation.State) {
	fmt.Printf("\nGeneration: %d | Unread stages: ", state.Generation())
	any := false
	for _, stage := range []propagation.Stage{propagation.StageIdeation, propagation.StageActionPlan, propagation.StageArchitecture} {
		if state.HasModuleUpdate(stage) {
			color.New(color.FgCyan).Printf("[%s] ", stage.DisplayName())
			any = true
		}
	}
	if !any {
		fmt.Print("none")
	}
	fmt.Println()
}
