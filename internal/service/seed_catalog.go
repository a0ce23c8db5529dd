package service

// defaultCatalog is the built-in 15-level catalog, used when no catalog file
// is configured. Placeholder layers are meant to be replaced through the
// admin endpoints or a catalog file.
var defaultCatalog = []catalogEntry{
	{
		LevelNumber:   1,
		Title:         "Layer 01 - Clock Puzzle",
		Description:   "Check the current time.",
		PuzzleContent: "Directions can change time. Rotate the arrows to set the correct time (12:15).",
		Answer:        "CLOCK_SOLVED",
		Hint:          "Rotate the arrow and set the clock digits to match the target time.",
	},
	{
		LevelNumber:   2,
		Title:         "Layer 02 - Escape System",
		Description:   "URL: Comparison is bad for soul, but it is a functional necessity in escape system survival.",
		PuzzleContent: "Find the URL containing \"esc\" and discover the hidden code within the random symbols.",
		Answer:        "CRACK",
		Hint:          "Follow the URL with \"esc\" in it. Then find \"esc\" in the code blocks. esc → crack",
	},
	{
		LevelNumber:   3,
		Title:         "Layer 03 - Crossword Puzzle",
		Description:   "Solve the crossword puzzle clues to reveal the final message.",
		PuzzleContent: "Clue 1: I come from the sun or a lamp (LIGHT)\nClue 2: I'm what you do when you return to a place you have been before (BACK)\nClue 3: I'm the place where you live with your family (HOME)\nClue 4: I'm a tiny word, the most common english word (THE)\nClue 5: I'm a path or a road, I show you which direction to go (WAY)",
		Answer:        "LIGHT THE WAY BACK HOME",
		Hint:          "When all answers are correct, combine the words to reveal the hidden message: LIGHT THE WAY BACK HOME",
	},
	{
		LevelNumber:   4,
		Title:         "Layer 04",
		Description:   "Combine all the clue slips you've collected.",
		PuzzleContent: "The final answer awaits those who paid attention.",
		Answer:        "LOCKSTEP",
		Hint:          "Your physical clues hold the key.",
	},
	{
		LevelNumber:   5,
		Title:         "Layer 05",
		Description:   "Placeholder puzzle 5",
		PuzzleContent: "This is a placeholder for level 5. Update with actual puzzle content.",
		Answer:        "ANSWER5",
		Hint:          "Hint for level 5",
	},
	{
		LevelNumber:   6,
		Title:         "Layer 06",
		Description:   "Placeholder puzzle 6",
		PuzzleContent: "This is a placeholder for level 6. Update with actual puzzle content.",
		Answer:        "ANSWER6",
		Hint:          "Hint for level 6",
	},
	{
		LevelNumber:   7,
		Title:         "Layer 07",
		Description:   "Placeholder puzzle 7",
		PuzzleContent: "This is a placeholder for level 7. Update with actual puzzle content.",
		Answer:        "ANSWER7",
		Hint:          "Hint for level 7",
	},
	{
		LevelNumber:   8,
		Title:         "Layer 08",
		Description:   "Placeholder puzzle 8",
		PuzzleContent: "This is a placeholder for level 8. Update with actual puzzle content.",
		Answer:        "ANSWER8",
		Hint:          "Hint for level 8",
	},
	{
		LevelNumber:   9,
		Title:         "Layer 09",
		Description:   "Placeholder puzzle 9",
		PuzzleContent: "This is a placeholder for level 9. Update with actual puzzle content.",
		Answer:        "ANSWER9",
		Hint:          "Hint for level 9",
	},
	{
		LevelNumber:   10,
		Title:         "Layer 10",
		Description:   "Placeholder puzzle 10",
		PuzzleContent: "This is a placeholder for level 10. Update with actual puzzle content.",
		Answer:        "ANSWER10",
		Hint:          "Hint for level 10",
	},
	{
		LevelNumber:   11,
		Title:         "Layer 11",
		Description:   "Placeholder puzzle 11",
		PuzzleContent: "This is a placeholder for level 11. Update with actual puzzle content.",
		Answer:        "ANSWER11",
		Hint:          "Hint for level 11",
	},
	{
		LevelNumber:   12,
		Title:         "Layer 12",
		Description:   "Placeholder puzzle 12",
		PuzzleContent: "This is a placeholder for level 12. Update with actual puzzle content.",
		Answer:        "ANSWER12",
		Hint:          "Hint for level 12",
	},
	{
		LevelNumber:   13,
		Title:         "Layer 13 - Geometric Decryption",
		Description:   "Shape the letter to decrypt",
		PuzzleContent: "The 4 geometric fragments contain encrypted data.\nArrange them to form the letter \"T\" to decrypt the message.\n\nDrag pieces to move • Click center circle to rotate 45°",
		Answer:        "TANGRAM",
		Hint:          "Try rotating the pentagon at an angle, not horizontally. The trapezoid goes underneath.",
	},
	{
		LevelNumber:   14,
		Title:         "Layer 14 - Consequences of Time",
		Description:   "Remember where it all began",
		PuzzleContent: "CHOICES HAVE CONSEQUENCES\n\nEvery decision you make leaves a mark in time.\nSome moments are more important than others.\n\nWhen did your journey through this maze truly begin?\nWhat time was on the clock when fate first called?",
		Answer:        "12:15",
		Hint:          "Think back to the very first puzzle you encountered. What time did the clock show?",
	},
	{
		LevelNumber:   15,
		Title:         "Layer 15 - Final Challenge",
		Description:   "The ultimate test",
		PuzzleContent: "This is a placeholder for the final level. Update with actual puzzle content.",
		Answer:        "VICTORY",
		Hint:          "Combine everything you've learned.",
		IsFinalLevel:  true,
	},
}
