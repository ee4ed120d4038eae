package dispatch

const (
	// Greeting answers `hello`.
	Greeting = "How can I help you?"

	// Usage answers `help`.
	Usage = `Commands:
  hello                              greet the assistant
  help                               show this message
  add <name>                         create a contact
  add <name> <phone|birthday>        add a phone or set the birthday, creating the contact if needed
  add <name> <phone> <birthday>      create a contact with a phone and a birthday
  delete <name> [phone]              delete a phone, or the whole contact
  change <name> <old> <new>          replace a phone
  show <name>|all|page               show one contact, all of them, or the next page
  goodbye | close | exit             leave

Phones: +123456789012, 123456789012 or 1234567890. Birthdays: dd.mm.yyyy.`
)
