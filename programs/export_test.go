package programs

var NewFromSources = newFromSources

var Upload = upload
