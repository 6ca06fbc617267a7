package graphql

const kgNodeFields = `
    id
    label
    labels
    pos
    sourceIds
`

var KgNodeSearchResultsPageInitialQuery = Operation{
	Name: "KgNodeSearchResultsPageInitialQuery",
	Document: `query KgNodeSearchResultsPageInitialQuery($kgId: String!, $limit: Int!, $offset: Int!, $query: KgNodeQuery!) {
  kgById(id: $kgId) {
    matchingNodes(limit: $limit, offset: $offset, query: $query) {` + kgNodeFields + `    }
    matchingNodesCount(query: $query)
    sources {
      id
      label
    }
  }
}`,
}

var KgNodeSearchResultsPagePaginationQuery = Operation{
	Name: "KgNodeSearchResultsPagePaginationQuery",
	Document: `query KgNodeSearchResultsPagePaginationQuery($kgId: String!, $limit: Int!, $offset: Int!, $query: KgNodeQuery!) {
  kgById(id: $kgId) {
    matchingNodes(limit: $limit, offset: $offset, query: $query) {` + kgNodeFields + `    }
    matchingNodesCount(query: $query)
  }
}`,
}

var KgNodePageQuery = Operation{
	Name: "KgNodePageQuery",
	Document: `query KgNodePageQuery($kgId: String!, $nodeId: String!) {
  kgById(id: $kgId) {
    nodeById(id: $nodeId) {` + kgNodeFields + `      aliases
      subjectOfEdges(limit: 1000) {
        id
        subject
        predicate
        object
        objectNode {` + kgNodeFields + `        }
        labels
        sourceIds
      }
    }
    sources {
      id
      label
    }
  }
}`,
}

var RandomKgNodeQuery = Operation{
	Name: "RandomKgNodeQuery",
	Document: `query RandomKgNodeQuery($kgId: String!) {
  kgById(id: $kgId) {
    randomNode {
      id
    }
  }
}`,
}

var KgSearchBoxAutocompleteQuery = Operation{
	Name: "KgSearchBoxAutocompleteQuery",
	Document: `query KgSearchBoxAutocompleteQuery($kgId: String!, $query: KgSearchQuery!) {
  kgById(id: $kgId) {
    search(query: $query) {
      __typename
      ... on KgEdgeLabelSearchResult {
        edgeLabel
        sourceIds
      }
      ... on KgEdgeSearchResult {
        edge {
          id
          labels
          sourceIds
        }
      }
      ... on KgNodeLabelSearchResult {
        nodeLabel
        sourceIds
      }
      ... on KgNodeSearchResult {
        node {` + kgNodeFields + `        }
      }
      ... on KgSourceSearchResult {
        sourceId
      }
    }
  }
}`,
}

var BenchmarkPageQuery = Operation{
	Name: "BenchmarkPageQuery",
	Document: `query BenchmarkPageQuery($benchmarkId: String!) {
  benchmarkById(id: $benchmarkId) {
    id
    name
    datasets {
      id
      name
    }
  }
}`,
}

const benchmarkQuestionFields = `
        id
        prompts {
          text
          type
        }
        type
        categories
        concept
`

var BenchmarkDatasetQuestionsPaginationQuery = Operation{
	Name: "BenchmarkDatasetQuestionsPaginationQuery",
	Document: `query BenchmarkDatasetQuestionsPaginationQuery($benchmarkId: String!, $datasetId: String!, $questionsLimit: Int!, $questionsOffset: Int!) {
  benchmarkById(id: $benchmarkId) {
    datasetById(id: $datasetId) {
      questions(limit: $questionsLimit, offset: $questionsOffset) {` + benchmarkQuestionFields + `      }
      questionsCount
    }
  }
}`,
}

var BenchmarkAnswerPageQuery = Operation{
	Name: "BenchmarkAnswerPageQuery",
	Document: `query BenchmarkAnswerPageQuery($benchmarkId: String!, $datasetId: String!, $submissionId: String!, $questionId: String!) {
  benchmarkById(id: $benchmarkId) {
    datasetById(id: $datasetId) {
      questionById(id: $questionId) {` + benchmarkQuestionFields + `        choices {
          id
          text
        }
      }
      submissionById(id: $submissionId) {
        answerByQuestionId(id: $questionId) {
          choiceId
          explanation {
            choiceAnalyses {
              choiceId
              questionAnswerPaths {
                startNodeId
                startNode {` + kgNodeFields + `                }
                endNodeId
                endNode {` + kgNodeFields + `                }
                score
                paths {
                  path
                  score
                }
              }
            }
          }
        }
      }
    }
  }
}`,
}
