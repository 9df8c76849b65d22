package aquatag

const Version = "0.3.0"
