// Package tempmail provides a Go client SDK for the Temp Mail API,
// a hosted disposable-email service.
//
// The SDK creates temporary mailboxes, lists and fetches received
// messages and attachments, and tracks API rate-limit quotas.
//
// Basic usage:
//
//	client, err := tempmail.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a temporary mailbox
//	email, err := client.CreateEmail(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fetch received messages
//	messages, err := client.ListMessages(ctx, email.Email)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, msg := range messages {
//	    fmt.Println("Subject:", msg.Subject)
//	}
package tempmail
