package demo

// Size is the coarse size class shown on a profile card.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Vibe tags photos in the catalog.
type Vibe string

const (
	VibePlaying     Vibe = "playing"
	VibeSleepy      Vibe = "sleepy"
	VibeAdventurous Vibe = "adventurous"
	VibeWater       Vibe = "water"
	VibeCuddly      Vibe = "cuddly"
	VibeNormal      Vibe = "normal"
)

var dogNames = []string{
	"Luna", "Max", "Bella", "Charlie", "Daisy", "Milo", "Lucy", "Cooper",
	"Bailey", "Rocky", "Sadie", "Tucker", "Molly", "Bear", "Stella", "Duke",
	"Penny", "Zeus", "Rosie", "Finn", "Maple", "Ollie", "Winnie", "Biscuit",
	"Hazel", "Moose", "Pepper", "Scout", "Willow", "Gus", "Juniper", "Koda",
	"Nala", "Otis", "Pickles", "Ranger", "Sunny", "Teddy", "Waffles", "Ziggy",
}

var dogBreeds = []string{
	"Golden Retriever", "Labrador Retriever", "French Bulldog", "German Shepherd",
	"Beagle", "Poodle", "Dachshund", "Corgi", "Australian Shepherd", "Boxer",
	"Shiba Inu", "Border Collie", "Bernese Mountain Dog", "Pit Bull Mix",
	"Cavalier King Charles Spaniel", "Husky", "Chihuahua", "Goldendoodle",
	"Boston Terrier", "Mixed Breed",
}

var dogSizes = []Size{SizeSmall, SizeMedium, SizeLarge}

var dogTraits = []string{
	"Playful", "Gentle", "Energetic", "Calm", "Friendly", "Curious",
	"Loyal", "Goofy", "Shy at first", "Loves kids", "Good with cats",
	"Ball obsessed", "Great on leash", "Social butterfly", "Couch potato",
	"Food motivated",
}

var neighborhoods = []string{
	"Downtown", "Riverside", "Old Town", "Hillcrest", "Lakeview", "Northside",
	"Eastgate", "West End", "Parkside", "Midtown", "Harbor District",
	"Maple Heights", "Sunset Park", "Oak Grove", "University District", "Mill Creek",
}

var dogActions = []string{
	"swimming", "sleeping", "playing fetch", "hiking", "cuddling",
	"chasing squirrels", "napping in the sun", "zoomies", "sniffing around",
	"posing",
}

var actionVibes = map[string]Vibe{
	"swimming":           VibeWater,
	"sleeping":           VibeSleepy,
	"playing fetch":      VibePlaying,
	"hiking":             VibeAdventurous,
	"cuddling":           VibeCuddly,
	"chasing squirrels":  VibePlaying,
	"napping in the sun": VibeSleepy,
	"zoomies":            VibePlaying,
	"sniffing around":    VibeAdventurous,
	"posing":             VibeNormal,
}

var actionAbout = map[string]string{
	"swimming":           "Will jump into any body of water. Towels required.",
	"sleeping":           "Professional napper looking for a quiet walking buddy.",
	"playing fetch":      "Bring a ball and we'll be best friends for life.",
	"hiking":             "Trail dog at heart. Weekend adventures wanted.",
	"cuddling":           "Lap dog energy in any size body. Loves a good snuggle.",
	"chasing squirrels":  "Squirrel patrol captain. Always on high alert at the park.",
	"napping in the sun": "Sunbeam connoisseur. Slow sniffy walks preferred.",
	"zoomies":            "Runs laps at full speed, then naps. Needs a playmate who keeps up.",
	"sniffing around":    "Every tree has a story and I want to read them all.",
	"posing":             "Camera-ready and very photogenic. Treats accepted as payment.",
}

const defaultAbout = "Friendly pup looking for new friends nearby."

func vibeForAction(action string) Vibe {
	if v, ok := actionVibes[action]; ok {
		return v
	}
	return VibeNormal
}

func aboutForAction(action string) string {
	if about, ok := actionAbout[action]; ok {
		return about
	}
	return defaultAbout
}
