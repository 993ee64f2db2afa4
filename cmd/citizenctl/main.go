// Command citizenctl loads citizen rosters and queries them by ID, age and
// last name.
package main

func main() {
	execute()
}
