package router

// SelectGreeting picks the opening message for a new chat session from the
// user's complaint history. An active complaint wins over a merely recent one;
// either puts the session into the continue-vs-new choice. "First" means index
// 0 of the snapshot slices, which the store returns newest-first.
func SelectGreeting(snapshot HistorySnapshot) Greeting {
	if len(snapshot.Active) > 0 {
		c := snapshot.Active[0]
		return Greeting{
			Key:       TemplateGreetingActive,
			State:     StateWaitingForChoice,
			Complaint: &c,
		}
	}
	if len(snapshot.Recent) > 0 {
		c := snapshot.Recent[0]
		return Greeting{
			Key:       TemplateGreetingRecent,
			State:     StateWaitingForChoice,
			Complaint: &c,
		}
	}
	return Greeting{
		Key:   TemplateGreetingDefault,
		State: StateIdle,
	}
}
