package build

const Generated = true
