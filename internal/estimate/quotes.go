package estimate

// Quotes are the flavor lines shown next to an estimate
var Quotes = []string{
	"That's gonna cost ya! But let's see exactly how much...",
	"In my professional opinion... *checks notes*... this is a big one!",
	"Time to make some educated guesses! Well, VERY educated guesses.",
	"Let me consult my magic calculator... just kidding, it's math!",
	"Another day, another multi-million dollar estimate!",
	"Did someone say infrastructure? That's my favorite word!",
	"Hold onto your hard hats, here comes the estimate!",
	"You want numbers? I got numbers!",
	"Let's see what the LIRR has in store for your wallet!",
	"Choo choo! All aboard the estimation train!",
}
